package easel

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// EstimateRequest carries the contact form fields. Absent fields stay "";
// all fields are trimmed before use.
type EstimateRequest struct {
	Name  string
	Email string
	Scope string
}

const estimateSubjectPrefix = "New Estimate Request - "

// MailtoURI builds the mailto: URI for the request, addressed to the given
// recipient. The subject names the sender (or "Website Visitor"), the body
// lists name, email, and project scope (or "Not selected"), and both are
// percent-encoded. Submission is a mail-client handoff — no network request.
func (r EstimateRequest) MailtoURI(to string) string {
	name := strings.TrimSpace(r.Name)
	email := strings.TrimSpace(r.Email)
	scope := strings.TrimSpace(r.Scope)

	subjectName := name
	if subjectName == "" {
		subjectName = "Website Visitor"
	}
	if scope == "" {
		scope = "Not selected"
	}

	subject := estimateSubjectPrefix + subjectName
	body := fmt.Sprintf("Name: %s\nEmail: %s\nProject Scope: %s", name, email, scope)

	return "mailto:" + to +
		"?subject=" + percentEncode(subject) +
		"&body=" + percentEncode(body)
}

// percentEncode query-escapes s for a mailto URI. Mail clients expect %20
// for spaces, not the form-encoding plus sign.
func percentEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// OpenMailClient hands the URI to the platform's default mail client. The
// command is started, not waited on; a missing handler surfaces as an error.
func OpenMailClient(uri string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", uri)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", uri)
	default:
		cmd = exec.Command("xdg-open", uri)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("easel: open mail client: %w", err)
	}
	return nil
}
