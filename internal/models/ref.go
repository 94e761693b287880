package models

import (
	"errors"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CampaignCodePrefix starts every generated campaign code.
const CampaignCodePrefix = "CAMP-"

var campaignCodePattern = regexp.MustCompile(`^CAMP-[A-Z0-9]{1,6}$`)

// ErrInvalidCampaignRef is returned for identifiers that are neither a campaign
// code nor an ObjectID.
var ErrInvalidCampaignRef = errors.New("invalid campaign identifier")

// RefKind tells which of the two campaign keys a CampaignRef holds
type RefKind int

const (
	RefByCode RefKind = iota + 1
	RefByObjectID
)

// CampaignRef identifies a campaign either by its human readable code or by
// its document id. Exactly one of Code / ObjectID is meaningful, per Kind.
type CampaignRef struct {
	Kind     RefKind
	Code     string
	ObjectID primitive.ObjectID
}

// ParseCampaignRef resolves a raw path identifier. Codes are matched
// case-insensitively and canonicalized to upper case.
func ParseCampaignRef(identifier string) (CampaignRef, error) {
	identifier = strings.TrimSpace(identifier)
	if upper := strings.ToUpper(identifier); campaignCodePattern.MatchString(upper) {
		return CampaignRef{Kind: RefByCode, Code: upper}, nil
	}
	if oid, err := primitive.ObjectIDFromHex(identifier); err == nil {
		return CampaignRef{Kind: RefByObjectID, ObjectID: oid}, nil
	}
	return CampaignRef{}, ErrInvalidCampaignRef
}

func (r CampaignRef) String() string {
	if r.Kind == RefByObjectID {
		return r.ObjectID.Hex()
	}
	return r.Code
}
