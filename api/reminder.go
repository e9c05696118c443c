package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/caremate/companion-api/reminder"
	"github.com/caremate/companion-api/schema"
)

func (s *Server) listReminders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reminders": s.scheduler.List()})
}

func (s *Server) createReminder(c *gin.Context) {
	var params struct {
		Title      string            `json:"title"`
		Time       string            `json:"time"`
		Repeat     schema.RepeatMode `json:"repeat"`
		DaysOfWeek []time.Weekday    `json:"days_of_week"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Repeat == "" {
		params.Repeat = schema.RepeatNone
	}

	created, err := s.scheduler.Add(params.Title, params.Time, params.Repeat, params.DaysOfWeek)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reminder": created})
}

func (s *Server) toggleReminder(c *gin.Context) {
	toggled, err := s.scheduler.Toggle(c.Param("reminderID"))
	if err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorReminderNotFound, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reminder": toggled})
}

func (s *Server) deleteReminder(c *gin.Context) {
	if err := s.scheduler.Delete(c.Param("reminderID")); err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorReminderNotFound, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "ok"})
}

func (s *Server) snoozeReminder(c *gin.Context) {
	var params struct {
		Minutes int `json:"minutes"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	snoozed, err := s.scheduler.Snooze(params.Minutes)
	switch err {
	case nil:
	case reminder.ErrInvalidSnoozeDuration:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidSnoozeDuration)
		return
	case reminder.ErrNoActiveReminder:
		abortWithEncoding(c, http.StatusConflict, errorNoActiveReminder)
		return
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reminder": snoozed})
}

func (s *Server) activeAlarm(c *gin.Context) {
	active, ok := s.scheduler.Active()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"active": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"active": active})
}

func (s *Server) stopAlarm(c *gin.Context) {
	s.scheduler.StopAlarm()
	c.JSON(http.StatusOK, gin.H{"result": "ok"})
}
