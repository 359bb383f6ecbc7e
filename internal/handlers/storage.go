package handlers

import (
	"context"

	"dogsapi/db"
	"dogsapi/models"
)

type StorageInterface interface {
	CreateDog(ctx context.Context, d *db.Dog) error
	GetDog(ctx context.Context, id int64) (*db.Dog, error)
	UpdateDog(ctx context.Context, d *db.Dog) error
	MarkDogDeleted(ctx context.Context, id int64) error
	SearchDogs(ctx context.Context, p models.SearchParam) ([]db.Dog, error)

	GetSupplier(ctx context.Context, id int64) (*db.Supplier, error)
}
