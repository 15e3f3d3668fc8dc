package server

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/ymaeda/kurashi"
	"github.com/ymaeda/kurashi/calendar"
	"github.com/ymaeda/kurashi/date"
	"github.com/ymaeda/kurashi/holiday"
	"github.com/ymaeda/kurashi/store"
)

func (s *Server) listPrices(c *gin.Context) {
	records, err := s.store.ListPrices(c.Request.Context())
	if err != nil {
		log.Printf("listPrices: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch records"})
		return
	}
	c.JSON(http.StatusOK, records)
}

func (s *Server) createPrice(c *gin.Context) {
	var input kurashi.PriceRecord
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	r, err := kurashi.NewPriceRecord(input.ItemName, input.Category, input.Price,
		input.Quantity, input.Volume, input.ShopName, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stored, err := s.store.CreatePrice(c.Request.Context(), r)
	if err != nil {
		log.Printf("createPrice: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to insert"})
		return
	}
	recordsCreated.Inc()
	c.JSON(http.StatusCreated, stored)
}

func (s *Server) deletePrice(c *gin.Context) {
	err := s.store.DeletePrice(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case err != nil:
		log.Printf("deletePrice: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete"})
	default:
		c.Status(http.StatusNoContent)
	}
}

func (s *Server) rank(c *gin.Context) {
	records, err := s.store.ListPrices(c.Request.Context())
	if err != nil {
		log.Printf("rank: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch records"})
		return
	}
	c.JSON(http.StatusOK, kurashi.RankByItem(records))
}

func (s *Server) best(c *gin.Context) {
	q := c.Query("q")
	records, err := s.store.ListPrices(c.Request.Context())
	if err != nil {
		log.Printf("best: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch records"})
		return
	}

	best, ok := kurashi.BestPriceFor(q, records)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no records match"})
		return
	}
	c.JSON(http.StatusOK, best)
}

func (s *Server) compare(c *gin.Context) {
	a, err := productQuery(c, "a")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product a: " + err.Error()})
		return
	}
	b, err := productQuery(c, "b")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product b: " + err.Error()})
		return
	}

	result, ok := kurashi.Compare(a, b)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "both products need a positive price and volume"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// productQuery reads one side of a comparison from query parameters
// a_price, a_vol, a_qty, a_name (or the b_ variants). Absent parameters
// stay zero, which makes the comparison incomplete rather than invalid.
func productQuery(c *gin.Context, side string) (kurashi.Product, error) {
	p := kurashi.Product{Name: c.Query(side + "_name")}
	var err error
	if v := c.Query(side + "_price"); v != "" {
		if p.Price, err = decimal.NewFromString(v); err != nil {
			return p, err
		}
	}
	if v := c.Query(side + "_vol"); v != "" {
		if p.Volume, err = decimal.NewFromString(v); err != nil {
			return p, err
		}
	}
	if v := c.Query(side + "_qty"); v != "" {
		if p.Quantity, err = decimal.NewFromString(v); err != nil {
			return p, err
		}
	}
	return p, nil
}

func (s *Server) listEvents(c *gin.Context) {
	from, err := date.Parse(c.DefaultQuery("from", date.Today().String()))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
		return
	}
	to, err := date.Parse(c.DefaultQuery("to", from.Add(30).String()))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
		return
	}

	events, err := s.store.ListEvents(c.Request.Context(), from, to)
	if err != nil {
		log.Printf("listEvents: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch events"})
		return
	}
	c.JSON(http.StatusOK, events)
}

func (s *Server) createEvent(c *gin.Context) {
	var e calendar.Event
	if err := c.ShouldBindJSON(&e); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if e.Title == "" || e.Date.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and event_date are required"})
		return
	}

	// stamp the member's current avatar when the caller did not
	if e.Avatar == "" && e.UserID != "" {
		if profile, err := s.store.Profile(c.Request.Context(), e.UserID); err == nil {
			e.Avatar = profile.AvatarEmoji
		}
	}

	saved, err := s.store.SaveEvent(c.Request.Context(), e)
	if err != nil {
		log.Printf("createEvent: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save event"})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (s *Server) deleteEvent(c *gin.Context) {
	err := s.store.DeleteEvent(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case err != nil:
		log.Printf("deleteEvent: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete"})
	default:
		c.Status(http.StatusNoContent)
	}
}

// holidayEntry is one observed holiday in a month.
type holidayEntry struct {
	Date date.Date `json:"date"`
	Name string    `json:"name"`
}

func (s *Server) holidays(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}
	m, err := strconv.Atoi(c.Param("month"))
	if err != nil || m < 1 || m > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return
	}
	month := time.Month(m)

	entries := []holidayEntry{}
	for d := 1; d <= date.DaysIn(year, month); d++ {
		on := date.New(year, month, d)
		if name, ok := holiday.Observed(on); ok {
			entries = append(entries, holidayEntry{Date: on, Name: name})
		}
	}
	c.JSON(http.StatusOK, entries)
}

func (s *Server) weatherWidget(c *gin.Context) {
	city := c.DefaultQuery("city", s.cfg.City)
	report, err := s.weather.current(c.Request.Context(), city)
	if err != nil {
		log.Printf("weather: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "weather service unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"city":            report.City,
		"temp_c":          report.TempC,
		"condition":       report.Condition,
		"pressure_hpa":    report.PressureHPa,
		"humidity":        report.Humidity,
		"pressure_status": report.PressureStatus(),
	})
}
