package notification

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"osms-portal/internal/domain/entities"
)

// EmailSender is the narrow boundary to a transactional email provider.

type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// DefaultNotifiableStatuses are the stages meaningful enough to email the
// customer about. Earlier stages (received, under_review) stay internal.
var DefaultNotifiableStatuses = []entities.RfqStatus{
	entities.RfqStatusQuoted,
	entities.RfqStatusWaitingPayment,
	entities.RfqStatusInProduction,
	entities.RfqStatusShipped,
	entities.RfqStatusComplete,
}

// NotifiableStatusesFromEnv parses NOTIFY_STATUSES (comma-separated stage
// values) into the customer-notification policy set, falling back to the
// default set when unset or empty.
func NotifiableStatusesFromEnv() map[entities.RfqStatus]bool {
	set := make(map[entities.RfqStatus]bool)
	raw := strings.TrimSpace(os.Getenv("NOTIFY_STATUSES"))
	if raw == "" {
		for _, s := range DefaultNotifiableStatuses {
			set[s] = true
		}
		return set
	}
	for _, part := range strings.Split(raw, ",") {
		s := entities.RfqStatus(strings.ToLower(strings.TrimSpace(part)))
		if s.IsValid() {
			set[s] = true
		}
	}
	return set
}

// StaffEmailChannel delivers every event to the internal staff inbox.

type StaffEmailChannel struct {
	sender EmailSender
	to     string
}

var _ Channel = (*StaffEmailChannel)(nil)

func NewStaffEmailChannel(sender EmailSender, to string) *StaffEmailChannel {
	return &StaffEmailChannel{sender: sender, to: to}
}

func (c *StaffEmailChannel) Name() string { return "staff-email" }

func (c *StaffEmailChannel) Accepts(ev Event) bool {
	return c.to != ""
}

func (c *StaffEmailChannel) Send(ctx context.Context, ev Event) error {
	switch ev.Kind {
	case EventRfqReceived:
		return c.sender.SendEmail(ctx, c.to, rfqReceivedSubject(ev.Rfq), rfqReceivedBody(ev.Rfq))
	case EventRfqStatusChanged:
		subject := fmt.Sprintf("RFQ %q moved to %s", orDefault(ev.Rfq.ProjectName, "Untitled project"), ev.Status.Label())
		body := fmt.Sprintf("RFQ: %s\nProject: %s\nCompany: %s\nNew status: %s\n",
			ev.Rfq.ID, orDefault(ev.Rfq.ProjectName, "N/A"), orDefault(ev.Rfq.Company, "N/A"), ev.Status.Label())
		return c.sender.SendEmail(ctx, c.to, subject, body)
	case EventEnquiryReceived:
		ident := ev.EnquiryName
		if ident == "" {
			ident = ev.EnquiryCompany
		}
		if ident == "" {
			ident = ev.EnquiryEmail
		}
		subject := fmt.Sprintf("New enquiry – %s", ident)
		body := fmt.Sprintf("Name: %s\nEmail: %s\nCompany: %s\n\nMessage:\n%s\n",
			orDefault(ev.EnquiryName, "-"), ev.EnquiryEmail, orDefault(ev.EnquiryCompany, "-"), ev.EnquiryMessage)
		return c.sender.SendEmail(ctx, c.to, subject, body)
	default:
		return fmt.Errorf("unsupported event kind %q", ev.Kind)
	}
}

func rfqReceivedSubject(r entities.Rfq) string {
	return fmt.Sprintf("New RFQ – %s", orDefault(r.ProjectName, "Untitled project"))
}

func rfqReceivedBody(r entities.Rfq) string {
	quantity := "N/A"
	if r.Quantity != entities.QuantityUnknown {
		quantity = fmt.Sprintf("%d", r.Quantity)
	}
	lines := []string{
		fmt.Sprintf("Project: %s", orDefault(r.ProjectName, "N/A")),
		fmt.Sprintf("Company: %s", orDefault(r.Company, "N/A")),
		fmt.Sprintf("Contact name: %s", orDefault(r.ContactName, "N/A")),
		fmt.Sprintf("Contact email: %s", orDefault(r.ContactEmail, "N/A")),
		fmt.Sprintf("Country: %s", orDefault(r.Country, "N/A")),
		fmt.Sprintf("Quantity: %s", quantity),
		fmt.Sprintf("Material: %s", orDefault(r.Material, "N/A")),
		fmt.Sprintf("Stage: %s", orDefault(r.Stage, "N/A")),
		"",
		"Notes:",
		orDefault(r.Notes, "N/A"),
	}
	return strings.Join(lines, "\n")
}

// CustomerEmailChannel emails the RFQ contact when their request reaches one
// of the notifiable stages. All other events are skipped, not failed.

type CustomerEmailChannel struct {
	sender     EmailSender
	notifiable map[entities.RfqStatus]bool
	baseURL    string
}

var _ Channel = (*CustomerEmailChannel)(nil)

func NewCustomerEmailChannel(sender EmailSender, notifiable map[entities.RfqStatus]bool, baseURL string) *CustomerEmailChannel {
	return &CustomerEmailChannel{sender: sender, notifiable: notifiable, baseURL: strings.TrimRight(baseURL, "/")}
}

func (c *CustomerEmailChannel) Name() string { return "customer-email" }

func (c *CustomerEmailChannel) Accepts(ev Event) bool {
	return ev.Kind == EventRfqStatusChanged && c.notifiable[ev.Status] && ev.Rfq.ContactEmail != ""
}

func (c *CustomerEmailChannel) Send(ctx context.Context, ev Event) error {
	label := ev.Status.Label()
	subject := fmt.Sprintf("Your RFQ %q is now %s", ev.Rfq.ProjectName, label)

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", orDefault(ev.Rfq.Company, "there"))
	b.WriteString("The status of your RFQ with One Stop Microfluidics Shop has been updated.\n\n")
	fmt.Fprintf(&b, "Project: %s\n", ev.Rfq.ProjectName)
	fmt.Fprintf(&b, "Company: %s\n", ev.Rfq.Company)
	if ev.Rfq.Quantity != entities.QuantityUnknown {
		fmt.Fprintf(&b, "Quantity: %d\n", ev.Rfq.Quantity)
	}
	fmt.Fprintf(&b, "Material: %s\n\n", ev.Rfq.Material)
	fmt.Fprintf(&b, "New status: %s\n", label)
	if c.baseURL != "" {
		fmt.Fprintf(&b, "\nYou can view this update and track progress in your customer portal:\n%s/portal?email=%s\n",
			c.baseURL, url.QueryEscape(ev.Rfq.ContactEmail))
	}
	b.WriteString("\nBest regards,\nOne Stop Microfluidics Shop\n")

	return c.sender.SendEmail(ctx, ev.Rfq.ContactEmail, subject, b.String())
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
