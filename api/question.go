package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getQuestions returns the questionnaire sorted ascending by id
func (s *Server) getQuestions(c *gin.Context) {
	questions, err := s.store.FetchQuestions(c)
	if shouldInterupt(err, c) {
		return
	}

	if len(questions) == 0 {
		abortWithEncoding(c, http.StatusNotFound, errorQuestionsNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": questions})
}
