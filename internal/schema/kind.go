package schema

import "recdict/internal/common"

// FieldKind is the ORM-level kind of a record field. It selects the
// formatter used when the field is serialized.
type FieldKind int

const (
	KindPlain        FieldKind = iota // any column without a dedicated formatter
	KindPrimaryKey                    // the record's identity column
	KindDate                          // calendar date
	KindDateTime                      // date and time of day
	KindTime                          // time of day
	KindForeignKey                    // many-to-one relation
	KindOneToOne                      // one-to-one relation
	KindManyToMany                    // many-to-many relation
	KindManyToOneRel                  // reverse side of a foreign key
	KindFile                          // stored file reference
	KindImage                         // stored image reference

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var kindNames = [KindTotal]string{
	KindPlain:        "plain",
	KindPrimaryKey:   "pk",
	KindDate:         "date",
	KindDateTime:     "datetime",
	KindTime:         "time",
	KindForeignKey:   "fk",
	KindOneToOne:     "o2o",
	KindManyToMany:   "m2m",
	KindManyToOneRel: "rel",
	KindFile:         "file",
	KindImage:        "image",
}

// String returns the tag name of the kind.
func (k FieldKind) String() string {
	if k < 0 || int(k) >= KindTotal {
		return common.UnknownStr
	}

	return kindNames[k]
}

// ParseKind maps a tag name to its FieldKind.
func ParseKind(name string) (FieldKind, bool) {
	for i, n := range kindNames {
		if n == name {
			return FieldKind(i), true
		}
	}

	return KindPlain, false
}

// IsRelation reports whether the kind points at other records.
func (k FieldKind) IsRelation() bool {
	return k.IsSingleRelation() || k.IsMultiRelation()
}

// IsSingleRelation reports whether the kind points at one record.
func (k FieldKind) IsSingleRelation() bool {
	switch k {
	default:
		return false
	case KindForeignKey, KindOneToOne:
		return true
	}
}

// IsMultiRelation reports whether the kind points at a set of records.
func (k FieldKind) IsMultiRelation() bool {
	switch k {
	default:
		return false
	case KindManyToMany, KindManyToOneRel:
		return true
	}
}

// IsTemporal reports whether the kind holds a date, time or both.
func (k FieldKind) IsTemporal() bool {
	switch k {
	default:
		return false
	case KindDate, KindDateTime, KindTime:
		return true
	}
}

// IsFile reports whether the kind references stored content.
func (k FieldKind) IsFile() bool {
	return k == KindFile || k == KindImage
}
