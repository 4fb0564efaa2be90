// Package htmlsanitize cleans operator-supplied markup (the site footer)
// before it is rendered as trusted HTML.
package htmlsanitize

import (
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

// footerPolicy allows the user-generated-content set plus class attributes,
// which footer links use for styling.
func footerPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowAttrs("class").Globally()
		policy = p
	})
	return policy
}

// Sanitize strips scripts, event handlers and unsafe URLs from s.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return footerPolicy().Sanitize(s)
}

// SanitizeToHTML sanitizes s and marks the result safe for templates.
// Plain text skips the policy and is only escaped.
func SanitizeToHTML(s string) template.HTML {
	if IsPlainText(s) {
		return template.HTML(template.HTMLEscapeString(s))
	}
	return template.HTML(Sanitize(s))
}

// IsPlainText reports whether s contains no markup at all.
func IsPlainText(s string) bool {
	return !strings.ContainsAny(s, "<>")
}
