package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Domenick1991/camrent/internal/domain"
	"github.com/Domenick1991/camrent/internal/pricing"
	"github.com/Domenick1991/camrent/internal/storefront"
)

var errQuit = errors.New("quit")

const helpText = `commands:
  list                         show the catalog
  reload                       fetch the catalog again
  select N                     open the booking form for camera N
  back                         return to the listing
  start YYYY-MM-DD             set the rental start date
  end YYYY-MM-DD               set the rental end date
  accessories 1,2 | none       choose accessories
  contact NAME PHONE [NOTES]   set contact details
  form                         show the booking form
  submit                       submit the booking
  close                        dismiss the confirmation
  quit                         exit`

// Shell drives one storefront session from line commands.
type Shell struct {
	workflow *storefront.Workflow
	loader   storefront.CatalogLoader
	session  *storefront.Session
	user     *domain.TelegramUser
	out      io.Writer
}

func NewShell(workflow *storefront.Workflow, loader storefront.CatalogLoader, user *domain.TelegramUser, out io.Writer) *Shell {
	return &Shell{
		workflow: workflow,
		loader:   loader,
		session:  storefront.NewSession("terminal"),
		user:     user,
		out:      out,
	}
}

// Run starts the host, loads the catalog and executes commands from in until
// EOF or quit.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	s.workflow.Start()
	_ = s.workflow.LoadCatalog(ctx, s.session, s.loader)
	s.printListing()

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}
		err := s.Exec(ctx, scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
}

func (s *Shell) Exec(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "help", "?":
		fmt.Fprintln(s.out, helpText)
	case "list":
		s.printListing()
	case "reload":
		_ = s.workflow.LoadCatalog(ctx, s.session, s.loader)
		s.printListing()
	case "select":
		id, err := intArg(args)
		if err != nil {
			return err
		}
		if err := s.workflow.SelectCameraByID(s.session, id); err != nil {
			return err
		}
		s.printForm()
	case "back":
		s.workflow.BackToList(s.session)
		s.printListing()
	case "start", "end":
		if len(args) != 1 {
			return fmt.Errorf("usage: %s YYYY-MM-DD", cmd)
		}
		d, err := storefront.ParseDate(args[0])
		if err != nil {
			return fmt.Errorf("%w: %q", domain.ErrInvalidDate, args[0])
		}
		if cmd == "start" {
			err = s.workflow.SetStartDate(s.session, d)
		} else {
			err = s.workflow.SetEndDate(s.session, d)
		}
		if err != nil {
			return err
		}
		s.printForm()
	case "accessories":
		ids, err := idList(args)
		if err != nil {
			return err
		}
		if err := s.workflow.SetAccessories(s.session, ids); err != nil {
			return err
		}
		s.printForm()
	case "contact":
		if len(args) < 2 {
			return errors.New("usage: contact NAME PHONE [NOTES]")
		}
		s.workflow.SetContact(s.session, args[0], args[1], strings.Join(args[2:], " "))
		s.printForm()
	case "form":
		s.printForm()
	case "submit":
		if _, err := s.workflow.Submit(ctx, s.session, s.user); err != nil {
			return err
		}
		fmt.Fprintln(s.out, s.session.Confirmation.Summary)
	case "close":
		s.workflow.DismissConfirmation(s.session)
		s.printListing()
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q, try help", cmd)
	}
	return nil
}

func (s *Shell) printListing() {
	if s.session.CatalogError != "" {
		fmt.Fprintln(s.out, s.session.CatalogError)
		return
	}
	for _, c := range s.session.Catalog {
		fmt.Fprintf(s.out, "%d. %s (%s) %s/day\n", c.ID, c.Name, c.Specs, pricing.FormatRUB(c.Price))
	}
}

func (s *Shell) printForm() {
	sess := s.session
	if sess.Selected != nil {
		fmt.Fprintf(s.out, "Booking %s, %s/day\n", sess.Selected.Name, pricing.FormatRUB(sess.Selected.Price))
	}
	f := sess.Form
	fmt.Fprintf(s.out, "  dates: %s to %s (earliest %s)\n", orDash(f.StartDate.IsZero(), f.StartDate.Format(domain.DateLayout)),
		orDash(f.EndDate.IsZero(), f.EndDate.Format(domain.DateLayout)), f.MinDate.Format(domain.DateLayout))

	names := make([]string, 0, len(f.AccessoryIDs))
	for _, a := range s.workflow.Accessories() {
		for _, id := range f.AccessoryIDs {
			if a.ID == id {
				names = append(names, fmt.Sprintf("%s (+%s/day)", a.Name, pricing.FormatRUB(a.Price)))
			}
		}
	}
	fmt.Fprintf(s.out, "  accessories: %s\n", orDash(len(names) == 0, strings.Join(names, ", ")))
	fmt.Fprintf(s.out, "  contact: %s %s\n", orDash(f.ContactName == "", f.ContactName), f.ContactPhone)
}

func orDash(empty bool, v string) string {
	if empty {
		return "-"
	}
	return v
}

func intArg(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.New("expected one number")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", args[0])
	}
	return n, nil
}

func idList(args []string) ([]int, error) {
	joined := strings.Join(args, ",")
	if joined == "" || strings.EqualFold(joined, "none") {
		return nil, nil
	}
	var ids []int
	for _, part := range strings.Split(joined, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", part)
		}
		ids = append(ids, n)
	}
	return ids, nil
}
