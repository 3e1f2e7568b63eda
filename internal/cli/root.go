package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	s := ""
	if a.user != nil {
		s = a.user.Name
	}
	if n := a.sync.PendingApprovalCount(); n > 0 {
		s = fmt.Sprintf("%s, %d pending", s, n)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to badgergram (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("bgram %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: refresh, sent, received, approvals, approve <id>, reject <id> [reason], submit <trackingId> <file>, send, logout, exit")
			} else {
				fmt.Println("Available commands: login, signup, exit")
			}

		case "login":
			a.Login(ctx)
		case "signup":
			a.Signup(ctx)
		case "refresh":
			a.sync.RefreshAll(ctx)
			if last, ok := a.sync.LastRefresh(); ok {
				fmt.Println("Refreshed at", last.Format("15:04:05"))
			} else {
				fmt.Println("Refresh finished with errors, showing cached data")
			}
		case "sent":
			a.listSent(ctx)
		case "received":
			a.listReceived(ctx)
		case "approvals":
			a.listApprovals(ctx)
		case "approve":
			if len(args) == 0 {
				fmt.Println("Usage: approve <submissionId>")
				continue
			}
			a.approve(ctx, args[0])
		case "reject":
			if len(args) == 0 {
				fmt.Println("Usage: reject <submissionId> [reason]")
				continue
			}
			a.reject(ctx, args[0], strings.Join(args[1:], " "))
		case "submit":
			if len(args) < 2 {
				fmt.Println("Usage: submit <trackingId> <file>")
				continue
			}
			a.submitPhoto(ctx, args[0], args[1])
		case "send":
			a.sendGift(ctx)
		case "logout":
			a.Logout(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

}
