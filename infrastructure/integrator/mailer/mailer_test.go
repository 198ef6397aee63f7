package mailer

import (
	"bytes"
	"context"
	"errors"
	"mime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

func TestMailer_Send(t *testing.T) {
	t.Run("desabilitado não envia", func(t *testing.T) {
		d := &fakeDialer{}
		m := &smtpMailer{dialer: d, from: "relatorios@analytico.app"}

		require.NoError(t, m.Send(context.Background(), "dono@loja.com", "Relatório", "corpo"))
		assert.Empty(t, d.sent)
	})

	t.Run("envia com anexo", func(t *testing.T) {
		d := &fakeDialer{}
		m := &smtpMailer{dialer: d, from: "relatorios@analytico.app", enabled: true}

		err := m.Send(context.Background(), "dono@loja.com", "Relatório semanal", "segue anexo",
			Attachment{Name: "relatorio.pdf", Content: []byte("%PDF-1.4")})
		require.NoError(t, err)
		require.Len(t, d.sent, 1)

		msg := d.sent[0]
		assert.Equal(t, []string{"dono@loja.com"}, msg.GetHeader("To"))
		// cabeçalhos com acento saem codificados em quoted-printable
		assert.Equal(t, []string{mime.QEncoding.Encode("UTF-8", "Relatório semanal")}, msg.GetHeader("Subject"))

		var raw bytes.Buffer
		_, err = msg.WriteTo(&raw)
		require.NoError(t, err)
		assert.Contains(t, raw.String(), "relatorio.pdf")
		assert.Contains(t, raw.String(), "Subject: =?UTF-8?q?Relat=C3=B3rio_semanal?=")
	})

	t.Run("erro do servidor SMTP", func(t *testing.T) {
		d := &fakeDialer{err: errors.New("connection refused")}
		m := &smtpMailer{dialer: d, enabled: true}

		err := m.Send(context.Background(), "dono@loja.com", "x", "y")
		assert.ErrorContains(t, err, "connection refused")
	})
}
