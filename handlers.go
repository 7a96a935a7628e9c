package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Creativeuseoftechnology/CUT-Blog-generator/assembler"
	"github.com/Creativeuseoftechnology/CUT-Blog-generator/blog"
	"github.com/Creativeuseoftechnology/CUT-Blog-generator/elementor"
	"github.com/Creativeuseoftechnology/CUT-Blog-generator/generator"
	"github.com/Creativeuseoftechnology/CUT-Blog-generator/store"
)

// assembleInput is shared by every endpoint that renders content to
// HTML. Images travel as base64 payloads the same way the editor holds
// them.
type assembleInput struct {
	Content       *blog.Content     `json:"content" binding:"required"`
	ContentImages []blog.ImageAsset `json:"contentImages"`
	HeaderImage   *blog.ImageAsset  `json:"headerImage"`
	VideoURL      string            `json:"videoUrl"`
	Keywords      string            `json:"keywords"`
}

func generateBlog(c *gin.Context) {
	var request struct {
		Keywords          string              `json:"keywords" binding:"required"`
		UserIntent        string              `json:"userIntent"`
		Framework         string              `json:"framework"`
		ExtraInstructions string              `json:"extraInstructions"`
		Products          []blog.ProductEntry `json:"products"`
		ContentImages     []blog.ImageAsset   `json:"contentImages"`
		HeaderImage       *blog.ImageAsset    `json:"headerImage"`
		VideoURL          string              `json:"videoUrl"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "keywords are required"})
		return
	}

	ctx := c.Request.Context()
	start := time.Now()

	req := &generator.GenerateRequest{
		Keywords:          request.Keywords,
		UserIntent:        request.UserIntent,
		Framework:         request.Framework,
		ExtraInstructions: request.ExtraInstructions,
		Products:          request.Products,
	}

	// Image descriptions give the model something concrete to write
	// around. A failed description degrades to a generic note.
	if request.HeaderImage != nil {
		req.HeaderImageContext = describeOrFallback(c, request.HeaderImage)
	} else {
		req.HeaderImageContext = "Geen header afbeelding aangeleverd."
	}
	for _, img := range request.ContentImages {
		img := img
		req.ImageContexts = append(req.ImageContexts, describeOrFallback(c, &img))
	}

	// Scrape source material for the selected products.
	for _, p := range request.Products {
		detail, err := siteFetcher.FetchPageContent(ctx, p.URL)
		if err != nil {
			log.Printf("Could not fetch product page %s: %v", p.URL, err)
			detail = "TITEL: " + p.Name + " URL: " + p.URL
		}
		req.ProductDetails = append(req.ProductDetails, detail)
	}

	content, err := aiClient.GenerateBlog(ctx, req)
	elapsed := float64(time.Since(start).Milliseconds())
	statistics.TrackGeneration(request.Keywords, elapsed, err != nil)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate blog: " + err.Error()})
		return
	}
	seoAnalyzer.GetStats().IncrementGenerations()

	html := blogAssembler.Assemble(content, request.ContentImages, request.HeaderImage, request.VideoURL, request.Keywords)
	analysis := seoAnalyzer.Analyze(html, request.Keywords)

	c.JSON(http.StatusOK, gin.H{
		"content":  content,
		"html":     html,
		"analysis": analysis,
	})
}

func modifyBlog(c *gin.Context) {
	var request struct {
		assembleInput
		Instruction string `json:"instruction" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content and instruction are required"})
		return
	}

	content, err := aiClient.ModifyBlog(c.Request.Context(), request.Content, request.Instruction)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to modify blog: " + err.Error()})
		return
	}
	seoAnalyzer.GetStats().IncrementModifications()

	html := blogAssembler.Assemble(content, request.ContentImages, request.HeaderImage, request.VideoURL, request.Keywords)
	analysis := seoAnalyzer.Analyze(html, request.Keywords)

	c.JSON(http.StatusOK, gin.H{
		"content":  content,
		"html":     html,
		"analysis": analysis,
	})
}

func assembleBlog(c *gin.Context) {
	var request assembleInput
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}

	request.Content.Normalize()
	html := blogAssembler.Assemble(request.Content, request.ContentImages, request.HeaderImage, request.VideoURL, request.Keywords)

	c.JSON(http.StatusOK, gin.H{"html": html})
}

func analyzeBlog(c *gin.Context) {
	var request struct {
		HTML     string `json:"html" binding:"required"`
		Keywords string `json:"keywords"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		statistics.TrackAnalysis(true)
		c.JSON(http.StatusBadRequest, gin.H{"error": "html is required"})
		return
	}

	analysis := seoAnalyzer.Analyze(request.HTML, request.Keywords)
	statistics.TrackAnalysis(false)

	c.JSON(http.StatusOK, analysis)
}

func exportElementor(c *gin.Context) {
	var request struct {
		Content *blog.Content `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}

	request.Content.Normalize()
	c.JSON(http.StatusOK, elementor.CreateTemplate(request.Content))
}

func exportHTML(c *gin.Context) {
	var request assembleInput
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}

	request.Content.Normalize()
	html := blogAssembler.Assemble(request.Content, request.ContentImages, request.HeaderImage, request.VideoURL, request.Keywords)
	document := assembler.CompleteDocument(html, request.Content)

	c.JSON(http.StatusOK, gin.H{"html": document})
}

func describeImage(c *gin.Context) {
	var request struct {
		Base64   string `json:"base64" binding:"required"`
		MimeType string `json:"mimeType" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "base64 and mimeType are required"})
		return
	}

	description, err := aiClient.DescribeImage(c.Request.Context(), request.Base64, request.MimeType)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to describe image: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"description": description})
}

func suggestKeywords(c *gin.Context) {
	var request struct {
		CurrentTopic string `json:"currentTopic"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	suggestions, err := aiClient.KeywordSuggestions(c.Request.Context(), request.CurrentTopic)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch suggestions: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

func suggestIntents(c *gin.Context) {
	var request struct {
		Keywords string `json:"keywords" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "keywords are required"})
		return
	}

	intents, err := aiClient.IntentSuggestions(c.Request.Context(), request.Keywords)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch suggestions: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"intents": intents})
}

func sitemapProducts(c *gin.Context) {
	indexURL := c.Query("url")
	if indexURL == "" {
		indexURL = "https://www.creativeuseoftechnology.com/sitemap_index.xml"
	}

	entries, err := siteFetcher.FetchSiteProducts(c.Request.Context(), indexURL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch sitemap: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": entries})
}

func listDrafts(c *gin.Context) {
	drafts, err := draftStore.ListDrafts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list drafts: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"drafts": drafts})
}

func saveDraft(c *gin.Context) {
	var draft store.Draft
	if err := c.ShouldBindJSON(&draft); err != nil || draft.Content == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "draft content is required"})
		return
	}

	if err := draftStore.SaveDraft(c.Request.Context(), &draft); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save draft: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, draft)
}

func getDraft(c *gin.Context) {
	draft, err := draftStore.GetDraft(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Draft not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load draft: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, draft)
}

func deleteDraft(c *gin.Context) {
	err := draftStore.DeleteDraft(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Draft not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete draft: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func describeOrFallback(c *gin.Context, img *blog.ImageAsset) string {
	description, err := aiClient.DescribeImage(c.Request.Context(), img.Base64, img.MimeType)
	if err != nil {
		log.Printf("Could not describe image: %v", err)
		return "Afbeelding beschikbaar, beschrijving niet gelukt."
	}
	return description
}
