package ingestion

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Platform is a job board recognized from a posting URL
type Platform string

// Known job boards
const (
	PlatformGreenhouse Platform = "greenhouse"
	PlatformLever      Platform = "lever"
	PlatformWorkday    Platform = "workday"
	PlatformUnknown    Platform = "unknown"
)

// boardProfile lists the hosts of a job board and the selectors that isolate its posting body
type boardProfile struct {
	hosts   []string
	content []string
	noise   []string
}

var boards = map[Platform]boardProfile{
	PlatformGreenhouse: {
		hosts:   []string{"greenhouse.io"},
		content: []string{".job__description.body", ".job__description", "#content", ".job-post-container"},
		noise:   []string{".application--wrapper", ".voluntary-self-id", "#usa_self_id_section", ".post-apply"},
	},
	PlatformLever: {
		hosts:   []string{"lever.co"},
		content: []string{".posting-page", ".posting-description", ".content"},
		noise:   []string{".apply-section", ".lever-application-form", ".posting-apply"},
	},
	PlatformWorkday: {
		hosts:   []string{"workday.com", "myworkdayjobs.com"},
		content: []string{"[data-automation-id='jobDescription']", ".job-description"},
		noise:   []string{"[data-automation-id='applyButton']", ".application-section"},
	},
}

// genericContent is tried for unknown boards and uploaded HTML
var genericContent = []string{
	".job-description", "#job-description", ".posting-content", ".job-details",
	"[data-testid='job-description']", "main", "article", ".content", "#content",
}

// alwaysNoise is removed from every page before extraction
const alwaysNoise = "nav, footer, header, script, style, noscript, form, .cookie-banner, .cookie-consent, " +
	".eeo-statement, .eeo-section, .legal-disclosure, .social-share, .share-buttons"

// DetectPlatform identifies the job board from a URL host
func DetectPlatform(rawURL string) Platform {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return PlatformUnknown
	}
	host := strings.ToLower(parsed.Host)
	for platform, profile := range boards {
		for _, h := range profile.hosts {
			if strings.Contains(host, h) {
				return platform
			}
		}
	}
	return PlatformUnknown
}

// HTMLText extracts readable text from an HTML page.
// The first matching content selector wins; the body is the fallback.
func HTMLText(html string, contentSelectors []string, noiseSelectors ...string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(alwaysNoise).Remove()
	if len(noiseSelectors) > 0 {
		doc.Find(strings.Join(noiseSelectors, ", ")).Remove()
	}

	if contentSelectors == nil {
		contentSelectors = genericContent
	}
	content := doc.Find("body")
	for _, selector := range contentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			content = selection.First()
			break
		}
	}

	// block elements end lines so headings survive as their own lines
	content.Find("p, li, h1, h2, h3, h4, h5, h6, div, br, tr").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	var lines []string
	for _, line := range strings.Split(content.Text(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}

// postingText extracts a job posting using the selectors of its board
func postingText(html string, platform Platform) (string, error) {
	profile, ok := boards[platform]
	if !ok {
		return HTMLText(html, genericContent)
	}
	return HTMLText(html, append(profile.content, genericContent...), profile.noise...)
}
