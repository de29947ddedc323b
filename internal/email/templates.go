package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// linkData feeds both account-lifecycle templates.
type linkData struct {
	Name      string
	ActionURL string
}

var confirmTmpl = template.Must(template.New("confirm").Parse(`
<p>Hola {{.Name}}, comprueba tu cuenta en BienesRaices.com</p>
<p>Tu cuenta ya está lista, solo debes confirmarla en el siguiente enlace:
<a href="{{.ActionURL}}">Confirmar cuenta</a></p>
<p>Si tú no creaste esta cuenta puedes ignorar este mensaje.</p>
`))

var resetTmpl = template.Must(template.New("reset").Parse(`
<p>Hola {{.Name}}, has solicitado reestablecer tu password en BienesRaices.com</p>
<p>Sigue el siguiente enlace para generar un password nuevo:
<a href="{{.ActionURL}}">Reestablecer password</a></p>
<p>Si tú no solicitaste el cambio de password, puedes ignorar este mensaje.</p>
`))

func renderConfirm(baseURL, name, token string) (string, error) {
	return render(confirmTmpl, linkData{
		Name:      name,
		ActionURL: fmt.Sprintf("%s/auth/confirmar/%s", baseURL, token),
	})
}

func renderReset(baseURL, name, token string) (string, error) {
	return render(resetTmpl, linkData{
		Name:      name,
		ActionURL: fmt.Sprintf("%s/auth/olvide-password/%s", baseURL, token),
	})
}

func render(t *template.Template, data linkData) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
