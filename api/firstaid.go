package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caremate/companion-api/schema"
)

func (s *Server) listFirstAidGuides(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"guides": schema.FirstAidGuides})
}

func (s *Server) getFirstAidGuide(c *gin.Context) {
	guide, ok := schema.FirstAidGuideFromTopic[c.Param("topic")]
	if !ok {
		abortWithEncoding(c, http.StatusNotFound, errorUnknownFirstAidTopic)
		return
	}

	c.JSON(http.StatusOK, gin.H{"guide": guide})
}
