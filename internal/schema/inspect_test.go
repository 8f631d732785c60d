package schema

import (
	"database/sql"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"recdict/orm"
)

type testAuthor struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type testTimestamps struct {
	Created time.Time `json:"created"`
	Updated null.Time `json:"updated"`
}

type testBook struct {
	testTimestamps

	Key        string               `orm:"pk"`
	Title      string               `json:"title"`
	Published  time.Time            `json:"published" orm:"date"`
	Opens      time.Duration        `json:"opens" orm:"time"`
	Archived   sql.NullTime         `json:"archived"`
	Author     *testAuthor          `json:"author"`
	Editor     orm.Lazy             `json:"editor" orm:"o2o"`
	CoAuthors  []*testAuthor        `json:"co_authors"`
	Reviewers  orm.Set[*testAuthor] `json:"reviewers" orm:"rel"`
	Cover      orm.Image            `json:"cover"`
	Manuscript *orm.File            `json:"manuscript"`
	Tags       []string             `json:"tags"`
	Extra      map[string]string    `orm:",name=extra_data"`
	Secret     string               `orm:"-"`
	hidden     int                  //nolint:unused
	Loader     orm.SetFunc          `json:"loader"`
	Deadline   *time.Time           `json:"deadline"`
}

func TestInspect_Kinds(t *testing.T) {
	t.Parallel()

	m, err := NewInspector().Inspect(reflect.TypeOf((**testBook)(nil)).Elem())
	require.NoError(t, err)

	assert.Equal(t, "testBook", m.ID.Name)
	assert.Equal(t, "recdict/internal/schema", m.ID.PkgPath)

	tests := []struct {
		name string
		kind FieldKind
	}{
		{"created", KindDateTime},
		{"updated", KindDateTime},
		{"Key", KindPrimaryKey},
		{"title", KindPlain},
		{"published", KindDate},
		{"opens", KindTime},
		{"archived", KindDateTime},
		{"author", KindForeignKey},
		{"editor", KindOneToOne},
		{"co_authors", KindManyToMany},
		{"reviewers", KindManyToOneRel},
		{"cover", KindImage},
		{"manuscript", KindFile},
		{"tags", KindPlain},
		{"extra_data", KindPlain},
		{"loader", KindManyToMany},
		{"deadline", KindDateTime},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := m.Field(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, f.Kind, "field %s", tt.name)
		})
	}

	assert.Len(t, m.Fields, len(tests))
	require.NotNil(t, m.PK)
	assert.Equal(t, "Key", m.PK.GoName)
}

func TestInspect_SkipsHiddenAndIgnored(t *testing.T) {
	t.Parallel()

	m, err := NewInspector().Inspect(reflect.TypeOf((*testBook)(nil)).Elem())
	require.NoError(t, err)

	_, err = m.Field("Secret")
	require.ErrorIs(t, err, ErrFieldNotFound)

	_, err = m.Field("hidden")
	require.ErrorIs(t, err, ErrFieldNotFound)

	_, err = m.Field("testTimestamps")
	require.ErrorIs(t, err, ErrFieldNotFound)
}

func TestModel_FieldSuggestion(t *testing.T) {
	t.Parallel()

	m, err := NewInspector().Inspect(reflect.TypeOf((*testBook)(nil)).Elem())
	require.NoError(t, err)

	_, err = m.Field("co_author")
	require.ErrorIs(t, err, ErrFieldNotFound)
	assert.Contains(t, err.Error(), `did you mean "co_authors"?`)

	_, err = m.Field("zzzzzz")
	require.ErrorIs(t, err, ErrFieldNotFound)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestInspect_GoNameAlias(t *testing.T) {
	t.Parallel()

	m, err := NewInspector().Inspect(reflect.TypeOf((*testBook)(nil)).Elem())
	require.NoError(t, err)

	byGo, err := m.Field("CoAuthors")
	require.NoError(t, err)

	byDict, err := m.Field("co_authors")
	require.NoError(t, err)

	assert.Same(t, byDict, byGo)
}

func TestInspect_PromotedFieldValue(t *testing.T) {
	t.Parallel()

	m, err := NewInspector().Inspect(reflect.TypeOf((*testBook)(nil)).Elem())
	require.NoError(t, err)

	f, err := m.Field("created")
	require.NoError(t, err)

	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	v, ok := f.Value(reflect.ValueOf(testBook{testTimestamps: testTimestamps{Created: at}}))
	require.True(t, ok)
	assert.Equal(t, at, v.Interface())
}

func TestInspect_NilEmbeddedPointer(t *testing.T) {
	t.Parallel()

	type withPtr struct {
		*testTimestamps

		ID int
	}

	m, err := NewInspector().Inspect(reflect.TypeOf((*withPtr)(nil)).Elem())
	require.NoError(t, err)

	f, err := m.Field("created")
	require.NoError(t, err)

	_, ok := f.Value(reflect.ValueOf(withPtr{ID: 1}))
	assert.False(t, ok)
}

func TestInspect_Errors(t *testing.T) {
	t.Parallel()

	type badTag struct {
		Name string `orm:"json"`
	}

	type dup struct {
		A string `json:"x"`
		B string `json:"x"`
	}

	in := NewInspector()

	_, err := in.Inspect(reflect.TypeOf((*int)(nil)).Elem())
	require.ErrorIs(t, err, ErrNotStruct)

	_, err = in.Inspect(nil)
	require.ErrorIs(t, err, ErrNotStruct)

	_, err = in.Inspect(reflect.TypeOf((*badTag)(nil)).Elem())
	require.ErrorIs(t, err, ErrBadTag)

	_, err = in.Inspect(reflect.TypeOf((*dup)(nil)).Elem())
	require.ErrorIs(t, err, ErrDuplicateField)
}

func TestInspect_Cached(t *testing.T) {
	t.Parallel()

	in := NewInspector()

	var wg sync.WaitGroup

	models := make([]*Model, 8)
	for i := range models {
		i := i

		wg.Add(1)

		go func() {
			defer wg.Done()

			models[i], _ = in.Inspect(reflect.TypeOf((*testAuthor)(nil)).Elem())
		}()
	}

	wg.Wait()

	for _, m := range models {
		assert.Same(t, models[0], m)
	}
}

func TestOf(t *testing.T) {
	t.Parallel()

	m, err := Of(&testAuthor{})
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, m.Names())
	require.NotNil(t, m.PK)
	assert.Equal(t, "id", m.PK.Name)
}
