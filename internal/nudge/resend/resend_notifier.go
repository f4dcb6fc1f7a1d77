package resend

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v2"

	"github.com/brk3/habitflow/pkg/habit"
)

type ResendNotifier struct {
	APIKey string
	From   string
	Email  string
}

const htmlTemplate = `
<p>You still have {{len .Habits}} habit{{if ne (len .Habits) 1}}s{{end}} to finish on {{.Date}}:</p>
<ul>
{{range .Habits}}
  <li style="color: {{.Color.Hex}}">{{.Name}}{{if .Streak}} ({{.Streak}} day streak){{end}}</li>
{{end}}
</ul>
`

var tmpl = template.Must(template.New("email").Parse(htmlTemplate))

func render(pending []habit.Habit, date string) (string, error) {
	data := struct {
		Habits []habit.Habit
		Date   string
	}{
		Habits: pending,
		Date:   date,
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *ResendNotifier) SendNudge(pending []habit.Habit, date string) error {
	if r.APIKey == "" || r.Email == "" {
		return fmt.Errorf("resend notifier needs an api key and a recipient")
	}
	body, err := render(pending, date)
	if err != nil {
		return err
	}

	client := resend.NewClient(r.APIKey)
	params := &resend.SendEmailRequest{
		From:    r.From,
		To:      []string{r.Email},
		Subject: fmt.Sprintf("%d habits left for %s", len(pending), date),
		Html:    body,
	}

	_, err = client.Emails.Send(params)
	return err
}
