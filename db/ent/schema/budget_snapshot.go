package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// BudgetSnapshot is the durable audit trail of per-user daily consumption.
// One row per (user, day), upserted as the in-memory ledger changes.
type BudgetSnapshot struct{ ent.Schema }

func (BudgetSnapshot) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "budget_snapshot"},
	}
}

func (BudgetSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("user_id", uuid.UUID{}),
		field.String("day").NotEmpty(), // YYYY-MM-DD in UTC
		field.Int64("tokens_used").Default(0),
		field.Float("spend_usd").Default(0),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (BudgetSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "day").Unique(),
	}
}
