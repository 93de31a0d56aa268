package errors

import (
	stderrors "errors"
	"testing"

	"media-downloader/pkg/errors/i18n"
)

func TestClassifyExtraction(t *testing.T) {
	cases := []struct {
		msg  string
		code string
	}{
		{"ERROR: [youtube] abc: Sign in to confirm you're not a bot", CodeBotCheck},
		{"ERROR: blocked as BOT traffic", CodeBotCheck},
		{"ERROR: Unsupported URL: https://example.com", CodeExtraction},
		{"ERROR: [generic] Unable to download https://robotics.example/bottle-demo", CodeExtraction},
		{"ERROR: confirm you are not a bot.", CodeBotCheck},
		{"ERROR: too many requests from bots", CodeBotCheck},
	}
	for _, tc := range cases {
		got := ClassifyExtraction(stderrors.New(tc.msg))
		if got.Code != tc.code {
			t.Fatalf("ClassifyExtraction(%q).Code = %q, want %q", tc.msg, got.Code, tc.code)
		}
	}
	if ClassifyExtraction(nil) != nil {
		t.Fatalf("ClassifyExtraction(nil) should be nil")
	}
}

func TestExtractionKeepsRawMessage(t *testing.T) {
	raw := "ERROR: Unsupported URL: https://example.com"
	if err := i18n.Load("tr"); err != nil {
		t.Fatalf("load: %v", err)
	}
	t.Cleanup(func() { _ = i18n.Load("en") })

	got := ClassifyExtraction(stderrors.New(raw))
	if got.UserMessage() != raw {
		t.Fatalf("UserMessage() = %q, want raw extractor text", got.UserMessage())
	}
}

func TestUserMessageIsLocalized(t *testing.T) {
	if err := i18n.Load("tr"); err != nil {
		t.Fatalf("load: %v", err)
	}
	t.Cleanup(func() { _ = i18n.Load("en") })

	if got := ErrNotFound(nil).UserMessage(); got != "Dosya bulunamadı" {
		t.Fatalf("UserMessage() = %q", got)
	}
}

func TestStatusFor(t *testing.T) {
	cases := map[string]int{
		CodeMissingURL:       400,
		CodeInvalidBody:      400,
		CodeNotFound:         404,
		CodeExtraction:       500,
		CodeBotCheck:         500,
		CodeConversionFailed: 500,
		CodeDownloadFailed:   500,
		CodeInternal:         500,
	}
	for code, want := range cases {
		if got := StatusFor(code); got != want {
			t.Fatalf("StatusFor(%q) = %d, want %d", code, got, want)
		}
	}
}

func TestMediaErrorUnwraps(t *testing.T) {
	cause := stderrors.New("exit status 1")
	err := ErrDownloadFailed(cause)
	if !stderrors.Is(err, cause) {
		t.Fatalf("expected errors.Is to reach the cause")
	}
}
