package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/kouper/carechat/conversation"
	"github.com/kouper/carechat/logger"
	"github.com/kouper/carechat/markdown"
	"github.com/kouper/carechat/style"
)

var flagRaw bool

var askCmd = &cobra.Command{
	Use:   "ask <prompt...>",
	Short: "Send one prompt and print the assistant reply",
	Long: `Send one prompt to POST /chat and print the reply rendered as markdown.
The backend keeps its own conversation state, so consecutive asks continue
the same conversation until "carechat reset".

Use "-" as the only argument to read the prompt from stdin.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Start a new conversation on the backend",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func init() {
	askCmd.Flags().BoolVar(&flagRaw, "raw", false, "Print the reply without markdown rendering")
	rootCmd.AddCommand(askCmd, resetCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	prompt := strings.Join(args, " ")
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return errors.Wrap(err, "read stdin")
		}
		prompt = string(data)
	}

	rt, err := setup(false)
	if err != nil {
		return err
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return ask(ctx, rt.conv, prompt, flagRaw, cmd.OutOrStdout())
}

// ask runs one turn and writes the reply to w. Backend failures print the
// fallback reply, as the interactive chat does.
func ask(ctx context.Context, conv *conversation.Controller, prompt string, raw bool, w io.Writer) error {
	if !conv.Submit(ctx, prompt) {
		return errors.New("prompt is empty")
	}
	h := conv.History()
	reply := h[len(h)-1].Content
	if !raw {
		reply = markdown.Render(reply)
	}
	_, err := fmt.Fprintln(w, reply)
	return err
}

func runReset(cmd *cobra.Command, args []string) error {
	rt, err := setup(false)
	if err != nil {
		return err
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rt.conv.Reset(ctx); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), style.SuccessText.Render("Conversation reset."))
	return nil
}
