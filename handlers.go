package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/loader"
	"github.com/Zachkp/portfolio/internal/particles"
)

type server struct {
	stages []loader.Stage
	labels []string
	settle time.Duration
	frame  time.Duration
}

func newServer(cfg *config.Config) (*server, error) {
	stages, labels, err := cfg.Loader.Schedule()
	if err != nil {
		return nil, err
	}
	return &server{
		stages: stages,
		labels: labels,
		settle: cfg.Loader.SettleDelay(),
		frame:  cfg.FrameInterval(config.DefaultStreamFrameMS * time.Millisecond),
	}, nil
}

func (s *server) routes(r *gin.Engine) {
	r.GET("/", s.index)
	r.GET("/loader/stream", s.loaderStream)
	r.GET("/particles.json", s.particles)

	// HTMX fragments
	r.GET("/contact-form", s.contactForm)
	r.POST("/contact", s.submitContact)
	r.GET("/work-content", s.workContent)
	r.GET("/education-content", s.educationContent)
}

type stagePanel struct {
	ID    string
	Label string
}

func (s *server) index(c *gin.Context) {
	panels := make([]stagePanel, len(s.stages))
	for i, st := range s.stages {
		panels[i] = stagePanel{ID: st.ID, Label: s.labels[i]}
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"stages":   panels,
		"navLinks": content.NavLinks(),
		"aboutMe":  content.AboutMe,
		"tagline":  content.Tagline,
		"projects": content.Projects,
		"skills":   content.Skills,
		"stats":    content.Stats,
	})
}

func (s *server) particles(c *gin.Context) {
	c.JSON(http.StatusOK, particles.Default())
}

func (s *server) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"title": "Contact Me",
		"form":  contact.Form{},
	})
}

func (s *server) submitContact(c *gin.Context) {
	var form contact.Form
	if err := c.ShouldBind(&form); err != nil {
		log.Printf("Contact form bind failed: %v", err)
	}

	n, next := contact.Submit(form)
	if n.Kind == contact.KindSuccess {
		log.Printf("Contact message from %s <%s>: %s", form.Name, form.Email, form.Subject)
	} else {
		log.Printf("Contact form rejected: %s", n.Message)
	}

	c.HTML(http.StatusOK, "contact.html", gin.H{
		"title":        "Contact Me",
		"form":         next,
		"notification": n,
	})
}

func (s *server) workContent(c *gin.Context) {
	c.HTML(http.StatusOK, "work-content.html", gin.H{
		"entries": content.Work,
	})
}

func (s *server) educationContent(c *gin.Context) {
	c.HTML(http.StatusOK, "education-content.html", gin.H{
		"entries": content.Education,
	})
}
