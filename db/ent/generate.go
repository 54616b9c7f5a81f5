// Command generate produces the ent client under gen/ent from the
// schemas in db/ent/schema. Run from the repo root: go run ./db/ent
package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/billfold/invoice-ingest/gen/ent",
			Schema:  "github.com/billfold/invoice-ingest/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
