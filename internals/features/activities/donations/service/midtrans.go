package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"github.com/rayto1224/ksbc-web/internals/features/activities/donations/model"
)

var SnapClient snap.Client

// InitMidtrans wires the Snap client with the server key.
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GenerateSnapToken creates a Midtrans Snap payment token for an online gift.
func GenerateSnapToken(d *model.DonationModel, name string, email string) (string, error) {
	orderID := ""
	if d.DonationOrderID != nil {
		orderID = *d.DonationOrderID
	}
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(d.DonationAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}
