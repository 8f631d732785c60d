package analyze

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recdict/internal/diagnostic"
	"recdict/internal/schema"
	"recdict/store"
)

func loadStore(t *testing.T) *Report {
	t.Helper()

	report, err := NewAnalyzer().LoadPackages("recdict/store")
	require.NoError(t, err)
	require.NotNil(t, report)

	return report
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	report := loadStore(t)

	for _, name := range []string{"Customer", "Order", "OrderItem", "Product"} {
		assert.NotNil(t, report.Model("recdict/store", name), name)
	}

	assert.Nil(t, report.Model("recdict/store", "OrderStatus"), "non-struct types are not models")
	assert.False(t, report.Diagnostics.HasErrors(), report.Diagnostics.Error())
}

func TestAnalyzer_StoreOrderFields(t *testing.T) {
	order := loadStore(t).Model("recdict/store", "Order")
	require.NotNil(t, order)

	assert.Equal(t, "id", order.PK)
	assert.Nil(t, order.Field("Note"), "orm:\"-\" fields are skipped")

	tests := []struct {
		name     string
		kind     schema.FieldKind
		explicit bool
	}{
		{"id", schema.KindPrimaryKey, false},
		{"customer", schema.KindForeignKey, false},
		{"status", schema.KindPlain, false},
		{"products", schema.KindManyToMany, true},
		{"items", schema.KindManyToOneRel, true},
		{"ordered_at", schema.KindDateTime, false},
		{"ship_date", schema.KindDate, true},
		{"delivery_window", schema.KindTime, true},
		{"invoice", schema.KindFile, false},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			f := order.Field(tt.name)
			require.NotNil(t, f)
			assert.Equal(t, tt.kind, f.Kind)
			assert.Equal(t, tt.explicit, f.Explicit)
		})
	}
}

// Static inspection and runtime reflection must agree on every store model.
func TestAnalyzer_MatchesRuntimeSchema(t *testing.T) {
	report := loadStore(t)

	records := []any{store.Customer{}, store.Order{}, store.OrderItem{}, store.Product{}}

	for _, rec := range records {
		rt := reflect.TypeOf(rec)

		t.Run(rt.Name(), func(t *testing.T) {
			runtime, err := schema.NewInspector().Inspect(rt)
			require.NoError(t, err)

			static := report.Model(rt.PkgPath(), rt.Name())
			require.NotNil(t, static)
			require.Len(t, static.Fields, len(runtime.Fields))

			for i, rf := range runtime.Fields {
				sf := static.Fields[i]
				assert.Equal(t, rf.Name, sf.Name)
				assert.Equal(t, rf.Kind, sf.Kind, rf.Name)
			}

			if runtime.PK != nil {
				assert.Equal(t, runtime.PK.Name, static.PK)
			}
		})
	}
}

func TestAnalyzer_Diagnostics(t *testing.T) {
	report, err := NewAnalyzer().LoadPackages("./testdata/src/broken")
	require.NoError(t, err)

	byCode := make(map[string][]diagnostic.Diagnostic)
	for _, d := range report.Diagnostics.All() {
		byCode[d.Code] = append(byCode[d.Code], d)
	}

	require.Len(t, byCode[diagnostic.CodeBadTag], 1)
	assert.Equal(t, "Flag", byCode[diagnostic.CodeBadTag][0].Field)

	require.Len(t, byCode[diagnostic.CodeDuplicateName], 1)
	assert.Equal(t, "Alias", byCode[diagnostic.CodeDuplicateName][0].Field)

	require.Len(t, byCode[diagnostic.CodeKindMismatch], 1)
	assert.Equal(t, "Born", byCode[diagnostic.CodeKindMismatch][0].Field)

	require.Len(t, byCode[diagnostic.CodeNoPrimaryKey], 1)
	assert.Contains(t, byCode[diagnostic.CodeNoPrimaryKey][0].Model, "Note")

	assert.True(t, report.Diagnostics.HasErrors())

	embedded := report.Model("recdict/internal/analyze/testdata/src/broken", "Tagged")
	require.NotNil(t, embedded)
	assert.NotNil(t, embedded.Field("created"), "promoted fields are flattened")
	assert.Equal(t, "id", embedded.PK)
}
