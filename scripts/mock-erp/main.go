// scripts/mock-erp/main.go
//
// A fake ERP for local development. It serves /lookups/<entity> with
// generated rows, paginated for most entities and as a flat list for the
// small catalogs.
//
// Usage:
//   go run scripts/mock-erp/main.go [addr]
//
// Then point upstream.base_url at http://localhost:9090.

package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const rowsPerEntity = 120

// Entities answered without pagination metadata.
var flat = map[string]bool{
	"order-statuses":   true,
	"payment-methods":  true,
	"delivery-methods": true,
	"tax-rates":        true,
	"units-of-measure": true,
}

func main() {
	addr := ":9090"
	if len(os.Args) > 1 {
		addr = os.Args[1]
	}

	r := gin.Default()

	r.POST("/oauth/token", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"access_token": "mock-token",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})

	r.GET("/lookups/:entity", func(c *gin.Context) {
		entity := c.Param("entity")
		rows := filter(generate(entity), c.Query("keyword"))

		if flat[entity] {
			c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
			return
		}

		limit := intQuery(c, "limit", 20)
		offset := intQuery(c, "offset", 0)
		if limit <= 0 || offset < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid paging parameters"})
			return
		}

		end := min(offset+limit, len(rows))
		page := []gin.H{}
		if offset < len(rows) {
			page = rows[offset:end]
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"items":   page,
			"limit":   limit,
			"offset":  offset,
			"hasMore": end < len(rows),
		})
	})

	log.Printf("mock ERP listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("mock ERP stopped: %v", err)
	}
}

func generate(entity string) []gin.H {
	n := rowsPerEntity
	if flat[entity] {
		n = 8
	}
	rows := make([]gin.H, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, gin.H{
			"id":    fmt.Sprintf("%s-%03d", entity, i),
			"label": fmt.Sprintf("%s %d", strings.ReplaceAll(entity, "-", " "), i),
		})
	}
	return rows
}

func filter(rows []gin.H, keyword string) []gin.H {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return rows
	}
	out := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row["label"].(string)), keyword) {
			out = append(out, row)
		}
	}
	return out
}

func intQuery(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return v
}
