package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caremate/companion-api/triage"
)

const triageHistoryLimit = 50

func (s *Server) listKnownSymptoms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"symptoms": triage.KnownSymptoms()})
}

func (s *Server) checkSymptoms(c *gin.Context) {
	var params struct {
		Symptoms string `json:"symptoms"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	result, err := s.triageEngine.Check(c.Request.Context(), params.Symptoms)
	if err == triage.ErrEmptyInput {
		abortWithEncoding(c, http.StatusBadRequest, errorEmptySymptomInput)
		return
	}
	if shouldInterupt(err, c) {
		return
	}

	// history write failure must not cost the user their triage result
	if _, err := s.store.SaveTriageRecord(
		params.Symptoms,
		result.Conditions,
		result.Recommendations,
		string(result.Severity),
		result.Advice,
		result.Source,
	); err != nil {
		log.WithError(err).Error("save triage record")
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

func (s *Server) triageHistory(c *gin.Context) {
	records, err := s.store.ListTriageRecords(triageHistoryLimit)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": records})
}
