package handler

import (
	"errors"
	"net/http"

	"github.com/angali/internal/service"
	"github.com/gin-gonic/gin"
)

type heroPayload struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"image_url"`
	CTALabel string `json:"cta_label"`
	CTAURL   string `json:"cta_url"`
	Position int    `json:"position"`
	Active   bool   `json:"active"`
}

type testimonialPayload struct {
	Author   string `json:"author"`
	Role     string `json:"role"`
	Body     string `json:"body"`
	Position int    `json:"position"`
	Active   bool   `json:"active"`
}

type footerLinkPayload struct {
	Label    string `json:"label"`
	URL      string `json:"url"`
	Position int    `json:"position"`
	Active   bool   `json:"active"`
}

type faqPayload struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Position int    `json:"position"`
	Active   bool   `json:"active"`
}

func (a *API) respondContentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrContentNotFound):
		respondError(c, http.StatusNotFound, "内容不存在")
	case errors.Is(err, service.ErrHeroTitleMissing),
		errors.Is(err, service.ErrTestimonialAuthorEmpty),
		errors.Is(err, service.ErrFooterLinkFieldsMissing),
		errors.Is(err, service.ErrFAQQuestionMissing):
		respondError(c, http.StatusBadRequest, "必填字段不能为空")
	default:
		respondError(c, http.StatusInternalServerError, "操作失败，请稍后重试")
	}
}

// GetHeroes 返回全部主视觉区块（含停用项），供后台编辑。
func (a *API) GetHeroes(c *gin.Context) {
	heroes, err := a.content.ListHeroes(false)
	if err != nil {
		a.respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"heroes": heroes})
}

// CreateHero 创建主视觉区块。
func (a *API) CreateHero(c *gin.Context) {
	var payload heroPayload
	if !bindJSON(c, &payload, "请求格式不正确") {
		return
	}

	hero, err := a.content.CreateHero(service.HeroInput{
		Title:    payload.Title,
		Subtitle: payload.Subtitle,
		ImageURL: payload.ImageURL,
		CTALabel: payload.CTALabel,
		CTAURL:   payload.CTAURL,
		Position: payload.Position,
		Active:   payload.Active,
	})
	if err != nil {
		a.respondContentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"hero": hero})
}

// UpdateHero 更新主视觉区块。
func (a *API) UpdateHero(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的 ID")
		return
	}

	var payload heroPayload
	if !bindJSON(c, &payload, "请求格式不正确") {
		return
	}

	hero, err := a.content.UpdateHero(id, service.HeroInput{
		Title:    payload.Title,
		Subtitle: payload.Subtitle,
		ImageURL: payload.ImageURL,
		CTALabel: payload.CTALabel,
		CTAURL:   payload.CTAURL,
		Position: payload.Position,
		Active:   payload.Active,
	})
	if err != nil {
		a.respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hero": hero})
}

// DeleteHero 删除主视觉区块。
func (a *API) DeleteHero(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的 ID")
		return
	}

	if err := a.content.DeleteHero(id); err != nil {
		a.respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "已删除"})
}

// GetTestimonials 返回全部用户评价。
func (a *API) GetTestimonials(c *gin.Context) {
	items, err := a.content.ListTestimonials(false)
	if err != nil {
		a.respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": items})
}

// CreateTestimonial 创建用户评价。
func (a *API) CreateTestimonial(c *gin.Context) {
	var payload testimonialPayload
	if !bindJSON(c, &payload, "请求格式不正确") {
		return
	}

	item, err := a.content.CreateTestimonial(service.TestimonialInput{
		Author:   payload.Author,
		Role:     payload.Role,
		Body:     payload.Body,
		Position: payload.Position,
		Active:   payload.Active,
	})
	if err != nil {
		a.respondContentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"testimonial": item})
}

// UpdateTestimonial 更新用户评价。
func (a *API) UpdateTestimonial(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的 ID")
		return
	}

	var payload testimonialPayload
	if !bindJSON(c, &payload, "请求格式不正确") {
		return
	}

	item, err := a.content.UpdateTestimonial(id, service.TestimonialInput{
		Author:   payload.Author,
		Role:     payload.Role,
		Body:     payload.Body,
		Position: payload.Position,
		Active:   payload.Active,
	})
	if err != nil {
		a.respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonial": item})
}

// DeleteTestimonial 删除用户评价。
func (a *API) DeleteTestimonial(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的 ID")
		return
	}

	if err := a.content.DeleteTestimonial(id); err != nil {
		a.respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "已删除"})
}

// GetFooterLinks 返回全部页脚链接。
func (a *API) GetFooterLinks(c *gin.Context) {
	items, err := a.content.ListFooterLinks(false)
	if err != nil {
		a.respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"footer_links": items})
}

// CreateFooterLink 创建页脚链接。
func (a *API) CreateFooterLink(c *gin.Context) {
	var payload footerLinkPayload
	if !bindJSON(c, &payload, "请求格式不正确") {
		return
	}

	item, err := a.content.CreateFooterLink(service.FooterLinkInput{
		Label:    payload.Label,
		URL:      payload.URL,
		Position: payload.Position,
		Active:   payload.Active,
	})
	if err != nil {
		a.respondContentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"footer_link": item})
}

// UpdateFooterLink 更新页脚链接。
func (a *API) UpdateFooterLink(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的 ID")
		return
	}

	var payload footerLinkPayload
	if !bindJSON(c, &payload, "请求格式不正确") {
		return
	}

	item, err := a.content.UpdateFooterLink(id, service.FooterLinkInput{
		Label:    payload.Label,
		URL:      payload.URL,
		Position: payload.Position,
		Active:   payload.Active,
	})
	if err != nil {
		a.respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"footer_link": item})
}

// DeleteFooterLink 删除页脚链接。
func (a *API) DeleteFooterLink(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的 ID")
		return
	}

	if err := a.content.DeleteFooterLink(id); err != nil {
		a.respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "已删除"})
}

// GetFAQs 返回全部常见问题。
func (a *API) GetFAQs(c *gin.Context) {
	items, err := a.content.ListFAQs(false)
	if err != nil {
		a.respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"faqs": items})
}

// CreateFAQ 创建常见问题。
func (a *API) CreateFAQ(c *gin.Context) {
	var payload faqPayload
	if !bindJSON(c, &payload, "请求格式不正确") {
		return
	}

	item, err := a.content.CreateFAQ(service.FAQInput{
		Question: payload.Question,
		Answer:   payload.Answer,
		Position: payload.Position,
		Active:   payload.Active,
	})
	if err != nil {
		a.respondContentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"faq": item})
}

// UpdateFAQ 更新常见问题。
func (a *API) UpdateFAQ(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的 ID")
		return
	}

	var payload faqPayload
	if !bindJSON(c, &payload, "请求格式不正确") {
		return
	}

	item, err := a.content.UpdateFAQ(id, service.FAQInput{
		Question: payload.Question,
		Answer:   payload.Answer,
		Position: payload.Position,
		Active:   payload.Active,
	})
	if err != nil {
		a.respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"faq": item})
}

// DeleteFAQ 删除常见问题。
func (a *API) DeleteFAQ(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的 ID")
		return
	}

	if err := a.content.DeleteFAQ(id); err != nil {
		a.respondContentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "已删除"})
}
