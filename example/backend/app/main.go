package main

import (
	"log"
	"net/http"

	"go.reef.dev/open/fin/compat/common"
	"go.reef.dev/open/fin/compat/response"

	"backend/app/routers"
)

func main() {
	// * open database and migrate registered models
	Connect()

	// * construct router
	router := common.Router()
	router.Mount("/users", routers.NewUsersRouter(db).Routes())

	router.Get("/", common.Wrap(func(w http.ResponseWriter, r *http.Request) error {
		return response.Success(w, "blub blub, fin is listening")
	}))

	log.Printf("listening on %s", address)
	log.Fatal(http.ListenAndServe(address, router))
}
