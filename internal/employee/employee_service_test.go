package employee

import (
	"context"
	"database/sql"
	"testing"

	employeeerrors "github.com/JoseGading/encorejeuneteam/internal/employee/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn   func(tx *sql.Tx) Repository
	createFn   func(ctx context.Context, e *Employee) error
	findAllFn  func(ctx context.Context) ([]Employee, error)
	findByIDFn func(ctx context.Context, id string) (*Employee, error)
	updateFn   func(ctx context.Context, e *Employee) error
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository            { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, e *Employee) error { return f.createFn(ctx, e) }
func (f *fakeRepo) FindAll(ctx context.Context) ([]Employee, error) { return f.findAllFn(ctx) }
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Employee, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) Update(ctx context.Context, e *Employee) error { return f.updateFn(ctx, e) }
func (f *fakeRepo) Delete(ctx context.Context, id string) error   { return f.deleteFn(ctx, id) }

type fakeCounter struct {
	next int64
}

func (f *fakeCounter) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}

func TestService_CreateAssignsDisplayOrder(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	ctx := context.Background()

	var saved Employee
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, e *Employee) error { saved = *e; return nil }

	svc := NewService(db, repo, &fakeCounter{}, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(ctx, CreateEmployeeRequest{Name: "Alice"})
	assert.NoError(t, err)
	assert.Equal(t, "Alice", resp.Name)
	assert.Equal(t, 1, resp.DisplayOrder)
	assert.Equal(t, saved.ID.String(), resp.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_EmptyName(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, &fakeCounter{}, nil)

	_, err := svc.Create(context.Background(), CreateEmployeeRequest{Name: "   "})
	assert.ErrorIs(t, err, employeeerrors.ErrEmptyName)
}

func TestService_GetByID_InvalidID(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, &fakeCounter{}, nil)

	_, err := svc.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
}

func TestService_GetByID_NotFound(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.findByIDFn = func(ctx context.Context, id string) (*Employee, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewService(db, repo, &fakeCounter{}, nil)

	_, err := svc.GetByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestService_UpdateRename(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	ctx := context.Background()

	id := uuid.New()
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findByIDFn = func(ctx context.Context, rid string) (*Employee, error) {
		return &Employee{ID: id, Name: "Alice", DisplayOrder: 1}, nil
	}
	repo.updateFn = func(ctx context.Context, e *Employee) error { return nil }

	svc := NewService(db, repo, &fakeCounter{}, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Update(ctx, id.String(), UpdateEmployeeRequest{Name: "Alicia"})
	assert.NoError(t, err)
	assert.Equal(t, "Alicia", resp.Name)
	assert.Equal(t, 1, resp.DisplayOrder)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	ctx := context.Background()

	id := uuid.New()
	deleted := ""
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findByIDFn = func(ctx context.Context, rid string) (*Employee, error) {
		return &Employee{ID: id}, nil
	}
	repo.deleteFn = func(ctx context.Context, rid string) error { deleted = rid; return nil }

	svc := NewService(db, repo, &fakeCounter{}, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()
	assert.NoError(t, svc.Delete(ctx, id.String()))
	assert.Equal(t, id.String(), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_GetRosterKeepsOrder(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.findAllFn = func(ctx context.Context) ([]Employee, error) {
		return []Employee{
			{ID: uuid.New(), Name: "Carol", DisplayOrder: 1},
			{ID: uuid.New(), Name: "Alice", DisplayOrder: 2},
			{ID: uuid.New(), Name: "Bob", DisplayOrder: 3},
		}, nil
	}

	svc := NewService(db, repo, &fakeCounter{}, nil)

	names, err := svc.GetRoster(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"Carol", "Alice", "Bob"}, names)
}
