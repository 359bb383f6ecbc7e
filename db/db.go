package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"dogsapi/models"
)

type Storage struct {
	db *sqlx.DB
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{db: db}
}

// Supplier lookup entity
type Supplier struct {
	ID           int64  `db:"id" json:"id"`
	SupplierName string `db:"supplier_name" json:"supplierName"`
}

func (s *Storage) GetSupplier(ctx context.Context, id int64) (*Supplier, error) {
	sup := &Supplier{}
	query := `SELECT id, supplier_name FROM supplier WHERE id=$1`
	err := s.db.GetContext(ctx, sup, query, id)
	return sup, err
}

// Dog record entity. SupplierName is populated from the joined supplier row
// on reads and never written back.
type Dog struct {
	ID                       int64                 `db:"id"`
	Name                     *string               `db:"name"`
	Breed                    *string               `db:"breed"`
	BadgeID                  *string               `db:"badge_id"`
	Gender                   *models.Gender        `db:"gender"`
	BirthDate                *time.Time            `db:"birth_date"`
	DateAcquired             *time.Time            `db:"date_acquired"`
	CurrentStatus            *models.DogStatus     `db:"current_status"`
	LeavingReason            *models.LeavingReason `db:"leaving_reason"`
	LeavingDate              *time.Time            `db:"leaving_date"`
	KennellingCharacteristic *string               `db:"kennelling_characteristic"`
	Deleted                  *bool                 `db:"deleted"`
	SupplierID               int64                 `db:"supplier_id"`
	SupplierName             *string               `db:"supplier_name"`
	CreatedAt                time.Time             `db:"created_at"`
}

const dogColumns = `d.id, d.name, d.breed, d.badge_id, d.gender, d.birth_date, d.date_acquired,
       d.current_status, d.leaving_reason, d.leaving_date, d.kennelling_characteristic,
       d.deleted, d.supplier_id, s.supplier_name, d.created_at`

// notDeleted is the soft-delete exclusion applied to every dog lookup.
const notDeleted = `(d.deleted = FALSE OR d.deleted IS NULL)`

func (s *Storage) CreateDog(ctx context.Context, d *Dog) error {
	query := `
        INSERT INTO dogs
            (name, breed, badge_id, gender, birth_date, date_acquired,
             current_status, leaving_reason, leaving_date, kennelling_characteristic,
             deleted, supplier_id)
        VALUES
            ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, FALSE, $11)
        RETURNING id, created_at`
	return s.db.QueryRowContext(ctx, query,
		d.Name, d.Breed, d.BadgeID, d.Gender, d.BirthDate, d.DateAcquired,
		d.CurrentStatus, d.LeavingReason, d.LeavingDate, d.KennellingCharacteristic,
		d.SupplierID).
		Scan(&d.ID, &d.CreatedAt)
}

// GetDog fetches an active dog by id. Soft-deleted records are reported as
// sql.ErrNoRows the same way as absent ones.
func (s *Storage) GetDog(ctx context.Context, id int64) (*Dog, error) {
	d := &Dog{}
	query := `SELECT ` + dogColumns + `
        FROM dogs d
        LEFT JOIN supplier s ON s.id = d.supplier_id
        WHERE d.id=$1 AND ` + notDeleted
	err := s.db.GetContext(ctx, d, query, id)
	return d, err
}

// UpdateDog overwrites every mutable column. Fields that are nil on the
// entity are written as NULL; id, deleted and created_at are never touched.
func (s *Storage) UpdateDog(ctx context.Context, d *Dog) error {
	query := `
        UPDATE dogs
        SET name=$1, breed=$2, badge_id=$3, gender=$4, birth_date=$5, date_acquired=$6,
            current_status=$7, leaving_reason=$8, leaving_date=$9,
            kennelling_characteristic=$10, supplier_id=$11
        WHERE id=$12`
	_, err := s.db.ExecContext(ctx, query,
		d.Name, d.Breed, d.BadgeID, d.Gender, d.BirthDate, d.DateAcquired,
		d.CurrentStatus, d.LeavingReason, d.LeavingDate, d.KennellingCharacteristic,
		d.SupplierID, d.ID)
	return err
}

// MarkDogDeleted flips the soft-delete flag. The flag is terminal; there is
// no way to clear it again.
func (s *Storage) MarkDogDeleted(ctx context.Context, id int64) error {
	query := `UPDATE dogs SET deleted = TRUE WHERE id=$1`
	_, err := s.db.ExecContext(ctx, query, id)
	return err
}

func (s *Storage) SearchDogs(ctx context.Context, p models.SearchParam) ([]Dog, error) {
	query, args := buildDogSearchQuery(p)
	dogs := []Dog{}
	err := s.db.SelectContext(ctx, &dogs, query, args...)
	if err != nil {
		return nil, err
	}
	return dogs, nil
}

// buildDogSearchQuery composes the search query from the mandatory
// soft-delete exclusion plus whichever filters are non-blank, ANDed in a
// fixed order. Results are always ordered by id ascending so pages stay
// stable across requests.
func buildDogSearchQuery(p models.SearchParam) (string, []interface{}) {
	conds := []string{notDeleted}
	var args []interface{}

	if name := strings.TrimSpace(p.Name); name != "" {
		args = append(args, strings.ToLower(name))
		conds = append(conds, fmt.Sprintf("LOWER(d.name) = $%d", len(args)))
	}
	if breed := strings.TrimSpace(p.Breed); breed != "" {
		args = append(args, strings.ToLower(breed))
		conds = append(conds, fmt.Sprintf("LOWER(d.breed) = $%d", len(args)))
	}
	if supplier := strings.TrimSpace(p.Supplier); supplier != "" {
		args = append(args, strings.ToLower(supplier))
		conds = append(conds, fmt.Sprintf("LOWER(s.supplier_name) = $%d", len(args)))
	}

	query := `SELECT ` + dogColumns + `
        FROM dogs d
        LEFT JOIN supplier s ON s.id = d.supplier_id
        WHERE ` + strings.Join(conds, " AND ") + `
        ORDER BY d.id ASC`
	query += fmt.Sprintf(" LIMIT %d OFFSET %d", p.PageSize, p.PageNum*p.PageSize)

	return query, args
}
