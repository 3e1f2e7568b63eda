package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/badgergram/badgerclient/internal/models"
)

func (a *App) listSent(ctx context.Context) {
	gifts := a.sync.SentGifts()
	if len(gifts) == 0 {
		fmt.Println("No sent gifts.")
		return
	}
	for _, g := range gifts {
		printGift(g, g.RecipientName)
	}
}

func (a *App) listReceived(ctx context.Context) {
	gifts := a.sync.ReceivedGifts()
	if len(gifts) == 0 {
		fmt.Println("No received gifts.")
		return
	}
	for _, g := range gifts {
		printGift(g, g.SenderName)
	}
}

func printGift(g models.Gift, who string) {
	line := fmt.Sprintf("%s  %-12s %-10s %s", g.ID, g.GiftType, g.Status, g.CreatedAt.Format("2006-01-02"))
	if who != "" {
		line += "  " + who
	}
	if d, ok := g.Duration.Int(); ok {
		line += fmt.Sprintf("  (%d days)", d)
	}
	fmt.Println(line)
}

func (a *App) listApprovals(ctx context.Context) {
	approvals := a.sync.PendingApprovals()
	if len(approvals) == 0 {
		fmt.Println("No pending approvals.")
		return
	}
	for _, p := range approvals {
		fmt.Printf("%s  gift=%s %s  submitted %s\n",
			p.SubmissionID, p.GiftID, p.GiftType, p.SubmittedAt.Format("2006-01-02 15:04"))
	}
}

func (a *App) approve(ctx context.Context, submissionID string) {
	if err := a.sync.ApproveSubmission(ctx, submissionID); err != nil {
		log.Printf("approve failed: %v", err)
		return
	}
	fmt.Println("Approved.")
}

func (a *App) reject(ctx context.Context, submissionID, reason string) {
	if err := a.sync.RejectSubmission(ctx, submissionID, reason); err != nil {
		log.Printf("reject failed: %v", err)
		return
	}
	fmt.Println("Rejected.")
}

func (a *App) submitPhoto(ctx context.Context, trackingID, path string) {
	photo, err := os.ReadFile(path)
	if err != nil {
		log.Printf("could not read %s: %v", path, err)
		return
	}
	if err := a.sync.SubmitChallengePhoto(ctx, trackingID, photo, path); err != nil {
		log.Printf("submit failed: %v", err)
		return
	}
	fmt.Println("Photo submitted.")
}

func (a *App) sendGift(ctx context.Context) {
	recipient, err := GetSimpleText(a.reader, "Recipient name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	phone, err := GetSimpleText(a.reader, "Recipient phone", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	giftType, err := GetSimpleText(a.reader, "Gift type (challenge/surprise)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	note, err := GetSimpleText(a.reader, "Personal note (optional)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	res, err := a.client.SendGift(ctx, models.SendGiftRequest{
		RecipientName:  recipient,
		RecipientPhone: phone,
		GiftType:       giftType,
		PersonalNote:   note,
	})
	if err != nil {
		log.Printf("send failed: %v", err)
		return
	}
	fmt.Printf("Gift sent, tracking id %s\n", res.TrackingID)
	a.sync.RefreshSentGifts(ctx)
}
