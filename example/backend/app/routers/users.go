package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.reef.dev/open/fin/compat/common"
	"go.reef.dev/open/fin/compat/response"
	"gorm.io/gorm"

	"backend/app/models"
)

type UsersRouter struct {
	db *gorm.DB
}

func NewUsersRouter(db *gorm.DB) *UsersRouter {
	return &UsersRouter{db: db}
}

func (r *UsersRouter) Routes() http.Handler {
	router := chi.NewRouter()
	router.Get("/", common.Wrap(r.List))
	router.Post("/", common.Wrap(r.Create))
	router.Get("/{item_id}", common.Wrap(r.One))
	router.Put("/{item_id}", common.Wrap(r.Update))
	router.Delete("/{item_id}", common.Wrap(r.Delete))
	return router
}

func (r *UsersRouter) List(w http.ResponseWriter, req *http.Request) error {
	var records []models.Users
	if result := r.db.Find(&records); result.Error != nil {
		return result.Error
	}
	return response.Success(w, records)
}

func (r *UsersRouter) Create(w http.ResponseWriter, req *http.Request) error {
	var record models.Users
	if err := common.Bind(req, &record); err != nil {
		return err
	}
	if result := r.db.Create(&record); result.Error != nil {
		return result.Error
	}
	return response.Success(w, record)
}

func (r *UsersRouter) One(w http.ResponseWriter, req *http.Request) error {
	var record models.Users
	if result := r.db.First(&record, "id = ?", chi.URLParam(req, "item_id")); result.Error != nil {
		return response.NewError(http.StatusNotFound, "users not found")
	}
	return response.Success(w, record)
}

func (r *UsersRouter) Update(w http.ResponseWriter, req *http.Request) error {
	var record models.Users
	if result := r.db.First(&record, "id = ?", chi.URLParam(req, "item_id")); result.Error != nil {
		return response.NewError(http.StatusNotFound, "users not found")
	}

	var payload models.Users
	if err := common.Bind(req, &payload); err != nil {
		return err
	}

	record.Name = payload.Name
	if result := r.db.Save(&record); result.Error != nil {
		return result.Error
	}
	return response.Success(w, record)
}

func (r *UsersRouter) Delete(w http.ResponseWriter, req *http.Request) error {
	var record models.Users
	if result := r.db.First(&record, "id = ?", chi.URLParam(req, "item_id")); result.Error != nil {
		return response.NewError(http.StatusNotFound, "users not found")
	}
	if result := r.db.Delete(&record); result.Error != nil {
		return result.Error
	}
	return response.Success(w, "deleted")
}
