package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"hostel-backend/services"
	"hostel-backend/utils"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/gin-gonic/gin"
)

// respondError translates a service failure into an HTTP response. Messages
// from typed service errors are rendered as-is; anything else is a 500 with
// the detail kept server-side.
func respondError(c *gin.Context, err error) {
	if isDuplicateErr(err) {
		utils.JSONError(c, http.StatusConflict, "A record with the same unique value already exists")
		return
	}
	switch services.KindOf(err) {
	case services.KindNotFound:
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case services.KindConflict:
		utils.JSONError(c, http.StatusConflict, err.Error())
	case services.KindValidation:
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	default:
		log.Printf("internal error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// isDuplicateErr detects a MySQL duplicate-key violation (ER_DUP_ENTRY).
func isDuplicateErr(err error) bool {
	var mysqlErr *gomysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid id parameter")
		return 0, false
	}
	return uint(id), true
}

func queryUint(c *gin.Context, name string) uint {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}
