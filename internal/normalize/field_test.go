package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestField_PriorityOrder(t *testing.T) {
	rec := Record{"dealer_code": "north-yard", "dealer": "south-yard"}

	v, ok := Field(rec, "dealer", "dealer_code")
	assert.True(t, ok)
	assert.Equal(t, "south-yard", v)

	v, ok = Field(rec, "dealerSlug", "dealer_code")
	assert.True(t, ok)
	assert.Equal(t, "north-yard", v)

	_, ok = Field(rec, "missing", "also_missing")
	assert.False(t, ok)
}

func TestField_SkipsNil(t *testing.T) {
	rec := Record{"model": nil, "model_name": "Voyager 450"}

	v, ok := Field(rec, "model", "model_name")
	assert.True(t, ok)
	assert.Equal(t, "Voyager 450", v)
}

func TestHasField_CountsPresentButEmpty(t *testing.T) {
	rec := Record{"unit_id": ""}

	assert.True(t, HasField(rec, "unit_id", "vin"))
	assert.False(t, HasField(rec, "chassis_no"))

	// Even an explicit nil means the field was present.
	assert.True(t, HasField(Record{"vin": nil}, "unit_id", "vin"))
}

func TestStringField_Coercion(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want string
	}{
		{"trims whitespace", Record{"dealer": "  north-yard  "}, "north-yard"},
		{"float", Record{"dealer": float64(42)}, "42"},
		{"int", Record{"dealer": 7}, "7"},
		{"missing", Record{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StringField(tt.rec, "dealer"))
		})
	}
}

func TestNumberField_FirstNumericWins(t *testing.T) {
	rec := Record{"max_capacity": "not a number", "maxCapacity": "40", "capacity": float64(99)}

	v, ok := NumberField(rec, "max_capacity", "maxCapacity", "capacity")
	assert.True(t, ok)
	assert.Equal(t, 40.0, v)

	_, ok = NumberField(Record{"max_capacity": "n/a"}, "max_capacity")
	assert.False(t, ok)
}
