package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMessage(t *testing.T) {
	msg := buildMessage("relay@example.com", "owner@example.com", "New Message", "Name: Bob\nEmail: bob@example.com\nMessage: hi")

	want := "From: relay@example.com\r\n" +
		"To: owner@example.com\r\n" +
		"Subject: New Message\r\n" +
		"\r\n" +
		"Name: Bob\nEmail: bob@example.com\nMessage: hi"
	assert.Equal(t, want, string(msg))
}

func TestNewClient(t *testing.T) {
	c := NewClient(Config{Host: "smtp.example.com", Port: 587, Username: "relay@example.com", Password: "secret"})
	assert.Equal(t, "smtp.example.com:587", c.addr)
}
