package schema

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		want    Tag
		wantErr bool
	}{
		{name: "empty", value: "", want: Tag{}},
		{name: "skip", value: "-", want: Tag{Skip: true}},
		{name: "kind", value: "date", want: Tag{Kind: KindDate, HasKind: true}},
		{name: "kind and name", value: "fk,name=owner", want: Tag{Kind: KindForeignKey, HasKind: true, Name: "owner"}},
		{name: "name only", value: ",name=owner", want: Tag{Name: "owner"}},
		{name: "spaces", value: " m2m , name=tags ", want: Tag{Kind: KindManyToMany, HasKind: true, Name: "tags"}},
		{name: "unknown kind", value: "blob", wantErr: true},
		{name: "unknown option", value: "date,omitempty", wantErr: true},
		{name: "empty name", value: "date,name=", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseTag(tt.value)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrBadTag)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDictName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "owner", DictName("Owner", `json:"user" orm:",name=owner"`, Tag{Name: "owner"}))
	assert.Equal(t, "user", DictName("Owner", `json:"user,omitempty"`, Tag{}))
	assert.Equal(t, "Owner", DictName("Owner", `json:"-"`, Tag{}))
	assert.Equal(t, "Owner", DictName("Owner", "", Tag{}))
	assert.Equal(t, "", JSONName(reflect.StructTag(`json:",omitempty"`)))
}

func TestFieldKind_String(t *testing.T) {
	t.Parallel()

	for i := 0; i < KindTotal; i++ {
		k := FieldKind(i)
		parsed, ok := ParseKind(k.String())
		require.True(t, ok, k.String())
		assert.Equal(t, k, parsed)
	}

	assert.Equal(t, "unknown", FieldKind(-1).String())
	assert.Equal(t, "unknown", FieldKind(KindTotal).String())

	assert.True(t, KindOneToOne.IsSingleRelation())
	assert.True(t, KindManyToOneRel.IsMultiRelation())
	assert.True(t, KindImage.IsFile())
	assert.True(t, KindTime.IsTemporal())
	assert.False(t, KindPlain.IsRelation())
}
