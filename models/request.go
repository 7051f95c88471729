package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Donation request statuses. Transitions are not validated server-side;
// whatever status the caller sets overwrites the previous one.
const (
	RequestStatusPending    = "pending"
	RequestStatusInProgress = "inprogress"
	RequestStatusDone       = "done"
	RequestStatusCanceled   = "canceled"
)

type DonationRequest struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	RequesterName   string             `bson:"requesterName" json:"requesterName"`
	RequesterEmail  string             `bson:"requesterEmail" json:"requesterEmail"`
	RecipientName   string             `bson:"recipientName" json:"recipientName"`
	RecipientMobile string             `bson:"recipientMobile,omitempty" json:"recipientMobile,omitempty"`
	District        string             `bson:"district" json:"district"`
	Upazila         string             `bson:"upazila" json:"upazila"`
	Hospital        string             `bson:"hospital" json:"hospital"`
	Address         string             `bson:"address" json:"address"`
	BloodGroup      string             `bson:"bloodGroup" json:"bloodGroup"`
	DonationDate    string             `bson:"donationDate" json:"donationDate"`
	DonationTime    string             `bson:"donationTime" json:"donationTime"`
	RequestMessage  string             `bson:"requestMessage,omitempty" json:"requestMessage,omitempty"`
	Status          string             `bson:"status" json:"status"`
	DonorName       string             `bson:"donorName,omitempty" json:"donorName,omitempty"`
	DonorEmail      string             `bson:"donorEmail,omitempty" json:"donorEmail,omitempty"`
}
