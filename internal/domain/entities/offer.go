package entities

type OfferKind string

const (
	OfferVideo OfferKind = "video"
	OfferAudio OfferKind = "audio"
)

// MediaOffer is one downloadable variant shown to the user.
type MediaOffer struct {
	Kind        OfferKind `json:"type"`
	Label       string    `json:"label"`
	Extension   string    `json:"ext"`
	SizeDisplay string    `json:"size"`
	FormatID    string    `json:"format_id"`
	Height      *int      `json:"height,omitempty"`
}
