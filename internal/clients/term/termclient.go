package term

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/messages"
)

const quitCommand = "/quit"

type clockDisplay interface {
	DateString() string
	TimeString() string
}

// Client is the terminal surface of the tracker: it prompts with the live
// date/time, reads commands line by line and prints the replies.
type Client struct {
	in    io.Reader
	out   io.Writer
	clock clockDisplay
}

func New(in io.Reader, out io.Writer, clock clockDisplay) *Client {
	return &Client{in: in, out: out, clock: clock}
}

func (c *Client) SendMessage(text string) error {
	_, err := fmt.Fprintln(c.out, text)
	return errors.Wrap(err, "write reply")
}

// Listen forwards commands to the service until the context is done, the
// input ends or the user quits.
func (c *Client) Listen(ctx context.Context, msgModel *messages.Service) {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	logger.Info("Start listening for commands")
	c.prompt()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop listening for commands")
			return
		case line, ok := <-lines:
			if !ok || strings.TrimSpace(line) == quitCommand {
				logger.Info("Input closed, stop listening")
				return
			}
			c.listenOnce(line, msgModel)
			c.prompt()
		}
	}
}

func (c *Client) listenOnce(line string, msgModel *messages.Service) {
	if strings.TrimSpace(line) == "" {
		return
	}

	err := msgModel.HandleIncomingMessage(messages.Message{Text: line})
	if err != nil {
		logger.Error("error processing command:", zap.Error(err))
	}
}

func (c *Client) prompt() {
	fmt.Fprintf(c.out, "[%s %s] > ", c.clock.DateString(), c.clock.TimeString())
}
