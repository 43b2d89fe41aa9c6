package mailer

import (
	"fmt"
	"log"
	"os"
	"time"

	"padelbook/src/lib"
	"padelbook/src/utils"

	"github.com/wneessen/go-mail"
)

type SendMailInput struct {
	To      string
	Subject string
	Body    string
}

func Send(input *SendMailInput) error {
	c, err := lib.GetSMTPClient()
	if err != nil {
		return err
	}
	msg := mail.NewMsg()
	if err := msg.From(os.Getenv("MAIL_FROM")); err != nil {
		return err
	}
	if err := msg.To(input.To); err != nil {
		return err
	}
	msg.Subject(input.Subject)
	msg.SetBodyString(mail.TypeTextPlain, input.Body)
	return c.DialAndSend(msg)
}

// sendAsync delivers a mail fire-and-forget: failures are logged, never
// surfaced to the calling transaction.
func sendAsync(input *SendMailInput) {
	go func() {
		if err := Send(input); err != nil {
			log.Printf("Error sending mail %q to %s: %s\n", input.Subject, input.To, err.Error())
		}
	}()
}

func NotifySlotFreed(to, courtName string, start time.Time) {
	sendAsync(&SendMailInput{
		To:      to,
		Subject: fmt.Sprintf("A slot on %s just opened up", courtName),
		Body: fmt.Sprintf(
			"Good news! The %s slot on %s you were waiting for is available again. Book it before someone else does.",
			start.Format("2006-01-02 15:04"), courtName,
		),
	})
}

func NotifyReservationConfirmed(to, courtName string, start time.Time, total int64) {
	sendAsync(&SendMailInput{
		To:      to,
		Subject: "Your court is booked",
		Body: fmt.Sprintf(
			"Your reservation for %s on %s is confirmed. Total paid: %s.",
			courtName, start.Format("2006-01-02 15:04"), utils.FormatRupiah(total),
		),
	})
}

func NotifyReservationCanceled(to, courtName string, start time.Time) {
	sendAsync(&SendMailInput{
		To:      to,
		Subject: "Your reservation was cancelled",
		Body: fmt.Sprintf(
			"Your reservation for %s on %s has been cancelled.",
			courtName, start.Format("2006-01-02 15:04"),
		),
	})
}
