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
			Package: "github.com/gagni555/course-content-to-study-material-generator/gen/ent",
			Schema:  "github.com/gagni555/course-content-to-study-material-generator/db/ent/schema",
		},
		entc.FeatureNames("sql/upsert"),
	)
	if err != nil {
		log.Fatal(err)
	}
}
