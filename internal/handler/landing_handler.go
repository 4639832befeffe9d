package handler

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// ShowLanding 返回落地页内容载荷，Markdown 字段渲染为净化后的 HTML。
// 请求经过身份中间件，首次访问会在响应里带上新的访客 Cookie。
func (a *API) ShowLanding(c *gin.Context) {
	heroes, err := a.content.ListHeroes(true)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load landing content")
		return
	}

	testimonials, err := a.content.ListTestimonials(true)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load landing content")
		return
	}

	footerLinks, err := a.content.ListFooterLinks(true)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load landing content")
		return
	}

	faqs, err := a.content.ListFAQs(true)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load landing content")
		return
	}

	heroViews := make([]gin.H, 0, len(heroes))
	for _, hero := range heroes {
		heroViews = append(heroViews, gin.H{
			"id":        hero.ID,
			"title":     hero.Title,
			"subtitle":  hero.Subtitle,
			"image_url": hero.ImageURL,
			"cta_label": hero.CTALabel,
			"cta_url":   hero.CTAURL,
		})
	}

	testimonialViews := make([]gin.H, 0, len(testimonials))
	for _, item := range testimonials {
		body, renderErr := renderMarkdown(item.Body)
		if renderErr != nil {
			body = ""
		}
		testimonialViews = append(testimonialViews, gin.H{
			"id":     item.ID,
			"author": item.Author,
			"role":   item.Role,
			"body":   body,
		})
	}

	footerViews := make([]gin.H, 0, len(footerLinks))
	for _, link := range footerLinks {
		footerViews = append(footerViews, gin.H{
			"id":    link.ID,
			"label": link.Label,
			"url":   link.URL,
		})
	}

	faqViews := make([]gin.H, 0, len(faqs))
	for _, faq := range faqs {
		answer, renderErr := renderMarkdown(faq.Answer)
		if renderErr != nil {
			answer = ""
		}
		faqViews = append(faqViews, gin.H{
			"id":       faq.ID,
			"question": faq.Question,
			"answer":   answer,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"hero":         heroViews,
		"testimonials": testimonialViews,
		"footer_links": footerViews,
		"faqs":         faqViews,
	})
}

func renderMarkdown(content string) (string, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	safe := sanitizer.SanitizeBytes(buf.Bytes())
	return string(safe), nil
}
