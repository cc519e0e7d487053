package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"bakery-api/config"
	"bakery-api/middlewares"
	"bakery-api/models"
	"bakery-api/notifier"
	"bakery-api/rabbitmq"
	"bakery-api/spam"
)

const minNotesLength = 15

// OrderController runs the submission gatekeeper for POST /api/orders. The
// origin and rate-limit gates run as route middlewares before Create; every
// remaining check lives here, in order, each exit terminal.
type OrderController struct {
	cfg      *config.Config
	notifier notifier.Notifier
	queue    *rabbitmq.RabbitMQ // nil when no broker is configured
	now      func() time.Time
}

func NewOrderController(cfg *config.Config, n notifier.Notifier, queue *rabbitmq.RabbitMQ) *OrderController {
	return &OrderController{
		cfg:      cfg,
		notifier: n,
		queue:    queue,
		now:      time.Now,
	}
}

func (oc *OrderController) Create(c *gin.Context) {
	stage, verdict := "accept", "accept"
	defer func() {
		middlewares.RecordGateVerdict(stage, verdict)
	}()

	var sub models.OrderSubmission
	if err := json.NewDecoder(c.Request.Body).Decode(&sub); err != nil {
		stage, verdict = "schema", "reject"
		oc.rejectInvalid(c, err)
		return
	}

	// Honeypot: the "company" input is hidden from humans. Anything typed in
	// it is an automated submitter; answer success and do nothing.
	if strings.TrimSpace(sub.Company) != "" {
		stage, verdict = "honeypot", "silent_accept"
		log.Printf("Honeypot triggered from %s", c.GetString(middlewares.ClientIPKey))
		oc.accept(c, sub.Sanitized())
		return
	}

	// Timing: humans do not fill the whole form within three seconds of it
	// rendering. The timestamp is client-supplied and spoofable; this is a
	// soft heuristic.
	if elapsed := oc.now().UnixMilli() - sub.FormStartedAt; elapsed < oc.cfg.MinFillTime.Milliseconds() {
		stage, verdict = "timing", "silent_accept"
		log.Printf("Form submitted too fast (%dms) from %s", elapsed, c.GetString(middlewares.ClientIPKey))
		oc.accept(c, sub.Sanitized())
		return
	}

	if err := binding.Validator.ValidateStruct(&sub); err != nil {
		stage, verdict = "schema", "reject"
		oc.rejectInvalid(c, err)
		return
	}

	// Cross-field rule the binding tags cannot express.
	if sub.PickupOrDelivery == "delivery" && strings.TrimSpace(sub.Address) == "" {
		stage, verdict = "address", "reject"
		oc.rejectInvalid(c, errors.New("delivery order without address"))
		return
	}

	notes := strings.TrimSpace(sub.GeneralNotes)
	if notes != "" && utf8.RuneCountInString(notes) < minNotesLength {
		stage, verdict = "notes_length", "reject"
		oc.rejectInvalid(c, errors.New("notes below minimum length"))
		return
	}

	if notes != "" {
		if v := spam.Detect(sub.GeneralNotes); v.IsSpam {
			stage, verdict = "spam_notes", "silent_accept"
			log.Printf("Spam detected in notes (%s) from %s", v.Reason, c.GetString(middlewares.ClientIPKey))
			oc.accept(c, sub.Sanitized())
			return
		}
	}
	if v := spam.Detect(sub.Name); v.IsSpam {
		stage, verdict = "spam_name", "silent_accept"
		log.Printf("Spam detected in name (%s) from %s", v.Reason, c.GetString(middlewares.ClientIPKey))
		oc.accept(c, sub.Sanitized())
		return
	}
	if sub.Email != "" {
		if v := spam.Detect(sub.Email); v.IsSpam {
			stage, verdict = "spam_email", "silent_accept"
			log.Printf("Spam detected in email (%s) from %s", v.Reason, c.GetString(middlewares.ClientIPKey))
			oc.accept(c, sub.Sanitized())
			return
		}
	}

	order := sub.Sanitized()
	if err := oc.notifier.Send(c.Request.Context(), order); err != nil {
		stage, verdict = "dispatch", "reject"
		if errors.Is(err, notifier.ErrNotConfigured) {
			log.Printf("Missing email configuration")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Email configuration is missing"})
			return
		}
		log.Printf("Error sending order email: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send order email"})
		return
	}

	oc.publishAccepted(order)
	oc.accept(c, order)
}

// accept answers the shared success body. A silent accept must be
// indistinguishable from a real one, so both paths come through here.
func (oc *OrderController) accept(c *gin.Context, order models.Order) {
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"whatsapp_url": notifier.WhatsAppURL(order, oc.cfg.WhatsAppPhone),
	})
}

// rejectInvalid answers a generic 400. The failure detail is logged
// server-side only, and only outside release mode.
func (oc *OrderController) rejectInvalid(c *gin.Context, err error) {
	if gin.Mode() != gin.ReleaseMode {
		log.Printf("Order validation failed: %v", err)
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Datos del formulario inválidos"})
}

// publishAccepted emits the order event when a broker is wired. Large orders
// get a higher priority so downstream consumers see them first.
func (oc *OrderController) publishAccepted(order models.Order) {
	if oc.queue == nil {
		return
	}

	priority := 5
	if order.Total > 1000 {
		priority = 9
	}

	if err := oc.queue.PublishOrderEvent(models.NewOrderEvent(order, "accepted"), priority); err != nil {
		log.Printf("Failed to publish order accepted event: %v", err)
	}
}
