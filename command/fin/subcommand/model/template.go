package model

import (
	"fmt"
	"strings"

	"github.com/lithammer/dedent"
)

// ModelTemplate generates the gorm model file for the resource. The model
// registers itself so the shared connection migrates it on startup.
func ModelTemplate(resource *Resource) string {
	return render(`
		package models

		// %[1]s is persisted through the shared gorm connection.
		type %[1]s struct {
			Id   uint    %[4]sgorm:"primaryKey" json:"id"%[4]s
			Name *string %[4]sjson:"name"%[4]s
		}

		func (%[1]s) TableName() string {
			return "%[2]s"
		}

		func init() {
			Register(&%[1]s{})
		}
	`, resource)
}

// RouterTemplate generates the chi router file with the five CRUD endpoints
// for the resource.
func RouterTemplate(resource *Resource) string {
	return render(`
		package routers

		import (
			"net/http"

			"github.com/go-chi/chi/v5"
			"go.reef.dev/open/fin/compat/common"
			"go.reef.dev/open/fin/compat/response"
			"gorm.io/gorm"

			"%[3]s/app/models"
		)

		type %[1]sRouter struct {
			db *gorm.DB
		}

		func New%[1]sRouter(db *gorm.DB) *%[1]sRouter {
			return &%[1]sRouter{db: db}
		}

		func (r *%[1]sRouter) Routes() http.Handler {
			router := chi.NewRouter()
			router.Get("/", common.Wrap(r.List))
			router.Post("/", common.Wrap(r.Create))
			router.Get("/{item_id}", common.Wrap(r.One))
			router.Put("/{item_id}", common.Wrap(r.Update))
			router.Delete("/{item_id}", common.Wrap(r.Delete))
			return router
		}

		func (r *%[1]sRouter) List(w http.ResponseWriter, req *http.Request) error {
			var records []models.%[1]s
			if result := r.db.Find(&records); result.Error != nil {
				return result.Error
			}
			return response.Success(w, records)
		}

		func (r *%[1]sRouter) Create(w http.ResponseWriter, req *http.Request) error {
			var record models.%[1]s
			if err := common.Bind(req, &record); err != nil {
				return err
			}
			if result := r.db.Create(&record); result.Error != nil {
				return result.Error
			}
			return response.Success(w, record)
		}

		func (r *%[1]sRouter) One(w http.ResponseWriter, req *http.Request) error {
			var record models.%[1]s
			if result := r.db.First(&record, "id = ?", chi.URLParam(req, "item_id")); result.Error != nil {
				return response.NewError(http.StatusNotFound, "%[2]s not found")
			}
			return response.Success(w, record)
		}

		func (r *%[1]sRouter) Update(w http.ResponseWriter, req *http.Request) error {
			var record models.%[1]s
			if result := r.db.First(&record, "id = ?", chi.URLParam(req, "item_id")); result.Error != nil {
				return response.NewError(http.StatusNotFound, "%[2]s not found")
			}

			var payload models.%[1]s
			if err := common.Bind(req, &payload); err != nil {
				return err
			}

			record.Name = payload.Name
			if result := r.db.Save(&record); result.Error != nil {
				return result.Error
			}
			return response.Success(w, record)
		}

		func (r *%[1]sRouter) Delete(w http.ResponseWriter, req *http.Request) error {
			var record models.%[1]s
			if result := r.db.First(&record, "id = ?", chi.URLParam(req, "item_id")); result.Error != nil {
				return response.NewError(http.StatusNotFound, "%[2]s not found")
			}
			if result := r.db.Delete(&record); result.Error != nil {
				return result.Error
			}
			return response.Success(w, "deleted")
		}
	`, resource)
}

// render fills the naming forms into the template and normalizes the
// indentation margin left by the raw string literal.
func render(template string, resource *Resource) string {
	content := fmt.Sprintf(template,
		resource.Struct,
		resource.Snake,
		resource.Module,
		"`")

	return strings.TrimSpace(dedent.Dedent(content)) + "\n"
}
