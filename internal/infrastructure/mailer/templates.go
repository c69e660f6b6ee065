package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

type ConfirmationData struct {
	BusinessName string
	Domain       string
	Price        float64
	PaymentLink  string
}

type DeliveryData struct {
	BusinessName string
	Domain       string
	LiveURL      string
	EditURL      string
}

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #4A90E2;">Demande de service concierge re&ccedil;ue</h2>
    <p>Bonjour,</p>
    <p>Votre demande de mise en ligne pour <strong>{{.BusinessName}}</strong> a bien &eacute;t&eacute; enregistr&eacute;e.</p>
    <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
      <h3 style="color: #28a745;">R&eacute;capitulatif</h3>
      <ul>
        <li><strong>Site web :</strong> {{.BusinessName}}</li>
        <li><strong>Domaine :</strong> {{.Domain}} (disponible)</li>
        <li><strong>Prix :</strong> {{printf "%.0f" .Price}}&euro; TTC tout inclus</li>
        <li><strong>D&eacute;lai :</strong> 2-4h apr&egrave;s paiement</li>
      </ul>
    </div>
    <div style="text-align: center; margin: 30px 0;">
      <a href="{{.PaymentLink}}"
         style="background: #28a745; color: white; padding: 15px 30px; text-decoration: none; border-radius: 5px; font-weight: bold;">
        Payer {{printf "%.0f" .Price}}&euro; et lancer la mise en ligne
      </a>
    </div>
    <p>Questions ? R&eacute;pondez simplement &agrave; cet email.</p>
    <p>Merci pour votre confiance !<br>L'&eacute;quipe AI WebGen</p>
  </div>
</body>
</html>`))

var deliveryTmpl = template.Must(template.New("delivery").Parse(`<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #28a745;">Votre site est en ligne !</h2>
    <p>F&eacute;licitations ! Le site <strong>{{.BusinessName}}</strong> est maintenant accessible.</p>
    <div style="background: #e7f3ff; padding: 20px; border-radius: 8px; margin: 20px 0; text-align: center;">
      <a href="{{.LiveURL}}" style="font-size: 24px; color: #0066cc; text-decoration: none;">{{.LiveURL}}</a>
    </div>
    <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
      <ul>
        <li>Domaine {{.Domain}} achet&eacute; et configur&eacute;</li>
        <li>H&eacute;bergement s&eacute;curis&eacute; activ&eacute;</li>
        <li>Certificat SSL (HTTPS) automatique</li>
      </ul>
    </div>
    <div style="background: #fff3cd; padding: 15px; border-radius: 8px; margin: 20px 0;">
      <p>Vous pouvez modifier votre site quand vous voulez :</p>
      <a href="{{.EditURL}}"
         style="background: #007bff; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px;">
        &Eacute;diter mon site
      </a>
    </div>
    <p>Merci pour votre confiance !<br>L'&eacute;quipe AI WebGen</p>
  </div>
</body>
</html>`))

// ConfirmationEmail renders the post-submission mail with the payment link.
func ConfirmationEmail(data ConfirmationData) (subject string, body string, err error) {
	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("rendering confirmation email: %w", err)
	}
	subject = fmt.Sprintf("Votre demande pour %s - Service Concierge", data.Domain)
	return subject, buf.String(), nil
}

// DeliveryEmail renders the mail announcing the published site.
func DeliveryEmail(data DeliveryData) (subject string, body string, err error) {
	var buf bytes.Buffer
	if err := deliveryTmpl.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("rendering delivery email: %w", err)
	}
	subject = fmt.Sprintf("%s est EN LIGNE ! Livraison terminée", data.Domain)
	return subject, buf.String(), nil
}
