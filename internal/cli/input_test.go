package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGetSimpleText_TrimsLine(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  alice@example.com  \n"))

	got, err := GetSimpleText(r, "Email address", &out)
	if err != nil {
		t.Fatalf("GetSimpleText error: %v", err)
	}
	if got != "alice@example.com" {
		t.Fatalf("unexpected input: %q", got)
	}
	if !strings.Contains(out.String(), "Email address") {
		t.Fatalf("prompt not printed: %q", out.String())
	}
}

func TestGetSimpleText_EOFAfterPartialLine(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("partial"))

	got, err := GetSimpleText(r, "Prompt", &out)
	if err != nil {
		t.Fatalf("GetSimpleText error: %v", err)
	}
	if got != "partial" {
		t.Fatalf("unexpected input: %q", got)
	}
}

func TestGetSimpleText_EOFWithoutInput(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader(""))

	if _, err := GetSimpleText(r, "Prompt", &out); err == nil {
		t.Fatal("expected EOF error")
	}
}

func TestGetPassword_UsesTerminalReader(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("hunter2"), nil }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	got, err := GetPassword("Password", &out)
	if err != nil {
		t.Fatalf("GetPassword error: %v", err)
	}
	if got != "hunter2" {
		t.Fatalf("unexpected password: %q", got)
	}
	if !strings.Contains(out.String(), "Password: ") {
		t.Fatalf("prompt not printed: %q", out.String())
	}
}

func TestGetPassword_ReadError(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return nil, errors.New("no tty") }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	if _, err := GetPassword("Password", &out); err == nil {
		t.Fatal("expected read error")
	}
}

func TestGetConfirmedPassword_Match(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("same"), nil }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	got, err := GetConfirmedPassword(&out)
	if err != nil {
		t.Fatalf("GetConfirmedPassword error: %v", err)
	}
	if got != "same" {
		t.Fatalf("unexpected password: %q", got)
	}
}

func TestGetConfirmedPassword_Mismatch(t *testing.T) {
	orig := readPassword
	entries := []string{"first", "second"}
	readPassword = func(fd int) ([]byte, error) {
		pw := entries[0]
		entries = entries[1:]
		return []byte(pw), nil
	}
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	if _, err := GetConfirmedPassword(&out); err == nil || !strings.Contains(err.Error(), "do not match") {
		t.Fatalf("expected mismatch error, got %v", err)
	}
}
