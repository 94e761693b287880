package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// DonationLimit is a campaign's funding target. Older campaign documents and
// clients carry it as a string, so both numbers and numeric strings are
// accepted; it is always written back as a number.
type DonationLimit float64

func parseLimit(s string) (DonationLimit, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("donationLimit %q is not a number", s)
	}
	return DonationLimit(f), nil
}

func (l *DonationLimit) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := parseLimit(s)
		if err != nil {
			return err
		}
		*l = v
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("donationLimit must be a number: %w", err)
	}
	*l = DonationLimit(f)
	return nil
}

func (l DonationLimit) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(float64(l))
}

// UnmarshalBSONValue reads numeric and string encodings. A stored string that
// is not a number reads as zero so one bad document cannot break a listing.
func (l *DonationLimit) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Double:
		*l = DonationLimit(raw.Double())
	case bsontype.Int32:
		*l = DonationLimit(raw.Int32())
	case bsontype.Int64:
		*l = DonationLimit(raw.Int64())
	case bsontype.Decimal128:
		f, err := strconv.ParseFloat(raw.Decimal128().String(), 64)
		if err != nil {
			*l = 0
			return nil
		}
		*l = DonationLimit(f)
	case bsontype.String:
		v, err := parseLimit(raw.StringValue())
		if err != nil {
			v = 0
		}
		*l = v
	case bsontype.Null, bsontype.Undefined:
		*l = 0
	default:
		return fmt.Errorf("cannot decode %s into donationLimit", t)
	}
	return nil
}
