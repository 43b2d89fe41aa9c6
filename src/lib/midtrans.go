package lib

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"log"
	"os"

	"padelbook/src/types"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var snapClient *snap.Client

func GetSnapClient() *snap.Client {
	if snapClient != nil {
		return snapClient
	}
	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	env := midtrans.Sandbox
	if os.Getenv("MIDTRANS_ENV") == "production" {
		env = midtrans.Production
	}
	c := snap.Client{}
	c.New(serverKey, env)
	snapClient = &c
	return snapClient
}

// NewSnapClient Replace snap instance with custom client implementation
func NewSnapClient(c *snap.Client) {
	snapClient = c
}

// CreateSnapTransaction registers the order with the gateway and returns the
// snap token the client pays with.
func CreateSnapTransaction(orderID string, amount int64, name, email string) (string, error) {
	c := GetSnapClient()
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}
	resp, err := c.CreateTransaction(req)
	if err != nil {
		log.Printf("[midtrans] Error creating transaction for order %s: %s\n", orderID, err.Error())
		return "", err
	}
	return resp.Token, nil
}

// VerifyNotificationSignature checks a webhook body's signature key:
// sha512(order_id + status_code + gross_amount + server_key).
func VerifyNotificationSignature(n *types.MidtransNotification) bool {
	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	sum := sha512.Sum512([]byte(n.OrderID + n.StatusCode + n.GrossAmount + serverKey))
	expected := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(expected), []byte(n.SignatureKey)) == 1
}

// MapTransactionStatus folds the gateway's status vocabulary onto the
// payment statuses. Unknown or intermediate statuses stay PENDING; nothing
// defaults to SUCCESS.
func MapTransactionStatus(transactionStatus, fraudStatus string) types.PaymentStatus {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "accept" {
			return types.PAYMENT_SUCCESS
		}
		return types.PAYMENT_PENDING
	case "settlement":
		return types.PAYMENT_SUCCESS
	case "deny", "cancel", "expire", "failure":
		return types.PAYMENT_FAILED
	default:
		return types.PAYMENT_PENDING
	}
}
