package handler

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/handler/helper"
)

var exportHeaders = []string{"ID", "Question", "Answer", "Category", "Difficulty"}

// ExportQuestions выгружает все вопросы в CSV или Excel
// GET /api/questions/export?format=csv|xlsx
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		helper.AbortWithError(c, http.StatusBadRequest)
		return
	}

	questions, err := h.questionService.AllQuestions()
	if err != nil {
		respondError(c, err)
		return
	}

	categories, err := h.categoryService.ListCategories()
	if err != nil {
		respondError(c, err)
		return
	}
	categoryNames := entity.CategoryMap(categories)

	filename := fmt.Sprintf("trivia_questions_%s", time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		exportXLSX(c, questions, categoryNames, filename)
	default:
		exportCSV(c, questions, categoryNames, filename)
	}
}

// exportRow формирует строку выгрузки; имя категории подставляется, если известно
func exportRow(q entity.Question, categoryNames map[string]string) []string {
	categoryID := strconv.FormatUint(uint64(q.CategoryID), 10)
	category := categoryID
	if name, ok := categoryNames[categoryID]; ok {
		category = name
	}
	return []string{
		strconv.FormatUint(uint64(q.ID), 10),
		sanitizeForExcel(q.Question),
		sanitizeForExcel(q.Answer),
		category,
		strconv.Itoa(q.Difficulty),
	}
}

// exportCSV отдаёт вопросы файлом CSV
func exportCSV(c *gin.Context, questions []entity.Question, categoryNames map[string]string, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))

	if err := writeCSV(c.Writer, questions, categoryNames); err != nil {
		log.Printf("[ExportQuestions] Ошибка записи CSV: %v", err)
	}
}

// writeCSV пишет BOM, заголовки и строки вопросов с экранированием спецсимволов.
// Возвращает первую ошибку записи.
func writeCSV(w io.Writer, questions []entity.Question, categoryNames map[string]string) error {
	// BOM для корректного отображения UTF-8 в Excel
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeaders); err != nil {
		return fmt.Errorf("write headers: %w", err)
	}
	for i, q := range questions {
		if err := writer.Write(exportRow(q, categoryNames)); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// exportXLSX экспортирует вопросы в Excel через StreamWriter
func exportXLSX(c *gin.Context, questions []entity.Question, categoryNames map[string]string, filename string) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Questions"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[ExportQuestions] Ошибка создания StreamWriter: %v", err)
		helper.AbortWithError(c, http.StatusInternalServerError)
		return
	}

	headers := make([]interface{}, len(exportHeaders))
	for i, h := range exportHeaders {
		headers[i] = h
	}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[ExportQuestions] Ошибка записи заголовков: %v", err)
	}

	for i, q := range questions {
		row := exportRow(q, categoryNames)
		cells := []interface{}{q.ID, row[1], row[2], row[3], q.Difficulty}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, cells); err != nil {
			log.Printf("[ExportQuestions] Ошибка записи строки %d: %v", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[ExportQuestions] Ошибка при Flush: %v", err)
		helper.AbortWithError(c, http.StatusInternalServerError)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[ExportQuestions] Ошибка записи Excel в response: %v", err)
	}
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}
