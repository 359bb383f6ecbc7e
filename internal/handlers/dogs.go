package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"dogsapi/db"
	"dogsapi/internal/apierror"
	"dogsapi/models"
)

// Request body size cap to avoid DoS
const maxBodyBytes = 1048576

// CreateDogHandler handles POST /api/dogs
func (h *Handler) CreateDogHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dto, err := decodeDogRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.checkStruct(r, dto); err != nil {
		h.writeError(w, r, err)
		return
	}

	supplier, err := h.findSupplier(r.Context(), dto.SupplierID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	dog := toEntity(dto)
	dog.SupplierID = supplier.ID
	dog.SupplierName = &supplier.SupplierName
	if err := h.Store.CreateDog(r.Context(), dog); err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDTO(dog))
}

// GetDogHandler handles GET /api/dogs/{id}
func (h *Handler) GetDogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := h.dogIDParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	dog, err := h.findDog(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDTO(dog))
}

// UpdateDogHandler handles PUT /api/dogs/{id}. The update is a full replace:
// fields absent from the payload are stored as NULL, not kept.
func (h *Handler) UpdateDogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := h.dogIDParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dto, err := decodeDogRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.checkStruct(r, dto); err != nil {
		h.writeError(w, r, err)
		return
	}

	current, err := h.findDog(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	supplier, err := h.findSupplier(r.Context(), dto.SupplierID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	dog := toEntity(dto)
	dog.ID = current.ID
	dog.Deleted = current.Deleted
	dog.CreatedAt = current.CreatedAt
	dog.SupplierID = supplier.ID
	dog.SupplierName = &supplier.SupplierName
	if err := h.Store.UpdateDog(r.Context(), dog); err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDTO(dog))
}

// DeleteDogHandler handles DELETE /api/dogs/{id}. The record must currently
// be active: deleting an already-deleted dog reports not-found, the same rule
// every other by-id operation follows.
func (h *Handler) DeleteDogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := h.dogIDParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	dog, err := h.findDog(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Store.MarkDogDeleted(r.Context(), dog.ID); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SearchDogsHandler handles GET /api/dogs with optional name, breed and
// supplier filters plus pageNum/pageSize. An empty page is a 404, not an
// empty 200 array.
func (h *Handler) SearchDogsHandler(w http.ResponseWriter, r *http.Request) {
	p, err := h.searchParams(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	dogs, err := h.Store.SearchDogs(r.Context(), p)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if len(dogs) == 0 {
		h.writeError(w, r, &apierror.NotFoundError{Key: "records.not.found"})
		return
	}

	out := make([]models.DogDTO, 0, len(dogs))
	for i := range dogs {
		out = append(out, toDTO(&dogs[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// decodeDogRequest parses the body, keeping the enum and date classification
// raised by DogDTO.UnmarshalJSON; anything else is a generic malformed body.
func decodeDogRequest(r *http.Request) (*models.DogDTO, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, &apierror.MalformedBodyError{Cause: err}
	}
	defer r.Body.Close()

	var dto models.DogDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		var enumErr *apierror.InvalidEnumError
		var dateErr *apierror.InvalidDateError
		if errors.As(err, &enumErr) || errors.As(err, &dateErr) {
			return nil, err
		}
		return nil, &apierror.MalformedBodyError{Cause: err}
	}
	return &dto, nil
}

func (h *Handler) dogIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, &apierror.ValidationError{Fields: []apierror.FieldError{
			{Field: "id", Message: h.resolve(r, "error.invalid.number", nil)},
		}}
	}
	return id, nil
}

func (h *Handler) searchParams(r *http.Request) (models.SearchParam, error) {
	q := r.URL.Query()
	p := models.SearchParam{
		Name:     q.Get("name"),
		Breed:    q.Get("breed"),
		Supplier: q.Get("supplier"),
		PageNum:  0,
		PageSize: 10,
	}

	var fields []apierror.FieldError
	if v := q.Get("pageNum"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			fields = append(fields, apierror.FieldError{Field: "pageNum", Message: h.resolve(r, "error.invalid.number", nil)})
		} else {
			p.PageNum = n
		}
	}
	if v := q.Get("pageSize"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			fields = append(fields, apierror.FieldError{Field: "pageSize", Message: h.resolve(r, "error.invalid.number", nil)})
		} else {
			p.PageSize = n
		}
	}
	if len(fields) > 0 {
		return p, &apierror.ValidationError{Fields: fields}
	}

	if err := h.checkStruct(r, p); err != nil {
		return p, err
	}
	return p, nil
}

// findSupplier resolves the supplier reference before any write. A nil id is
// the same failure as an unknown one and never reaches the store.
func (h *Handler) findSupplier(ctx context.Context, id *int64) (*db.Supplier, error) {
	if id == nil {
		return nil, &apierror.NotFoundError{Key: "invalid.supplier.reference"}
	}
	supplier, err := h.Store.GetSupplier(ctx, *id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &apierror.NotFoundError{Key: "invalid.supplier.reference"}
	}
	if err != nil {
		return nil, err
	}
	return supplier, nil
}

func (h *Handler) findDog(ctx context.Context, id int64) (*db.Dog, error) {
	dog, err := h.Store.GetDog(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &apierror.NotFoundError{Key: "record.not.exist", Args: map[string]interface{}{"Id": id}}
	}
	if err != nil {
		return nil, err
	}
	return dog, nil
}

func toEntity(dto *models.DogDTO) *db.Dog {
	return &db.Dog{
		Name:                     dto.Name,
		Breed:                    dto.Breed,
		BadgeID:                  dto.BadgeID,
		Gender:                   dto.Gender,
		BirthDate:                dateToTime(dto.BirthDate),
		DateAcquired:             dateToTime(dto.DateAcquired),
		CurrentStatus:            dto.CurrentStatus,
		LeavingReason:            dto.LeavingReason,
		LeavingDate:              dateToTime(dto.LeavingDate),
		KennellingCharacteristic: dto.KennellingCharacteristic,
	}
}

func toDTO(d *db.Dog) models.DogDTO {
	id := d.ID
	supplierID := d.SupplierID
	return models.DogDTO{
		ID:                       &id,
		Name:                     d.Name,
		Breed:                    d.Breed,
		SupplierID:               &supplierID,
		SupplierName:             d.SupplierName,
		BadgeID:                  d.BadgeID,
		BirthDate:                timeToDate(d.BirthDate),
		DateAcquired:             timeToDate(d.DateAcquired),
		Gender:                   d.Gender,
		CurrentStatus:            d.CurrentStatus,
		LeavingReason:            d.LeavingReason,
		LeavingDate:              timeToDate(d.LeavingDate),
		KennellingCharacteristic: d.KennellingCharacteristic,
	}
}

func dateToTime(d *models.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func timeToDate(t *time.Time) *models.Date {
	if t == nil {
		return nil
	}
	return &models.Date{Time: *t}
}
