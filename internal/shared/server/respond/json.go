package respond

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK writes a 200 OK JSON response.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}

// Attachment writes data as a downloadable file.
func Attachment(c *gin.Context, fileName, contentType string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename=`+strconv.Quote(fileName))
	c.Data(http.StatusOK, contentType, data)
}

// StreamAttachment copies r to the response as a downloadable file. Headers
// are committed before the first byte is read.
func StreamAttachment(c *gin.Context, fileName, contentType string, r io.Reader) {
	c.Header("Content-Disposition", `attachment; filename=`+strconv.Quote(fileName))
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, r)
}
