package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	config "github.com/leonardoresende2010-coder/cism-repositorio/configs"
	"github.com/leonardoresende2010-coder/cism-repositorio/database"
	"github.com/leonardoresende2010-coder/cism-repositorio/models"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

const certificatePassingPercent = 70.0

// CheckAndGenerateCertificate issues a completion certificate when a user
// finishes every question of a study block with a passing score. Runs in the
// background after progress submission; failures only log.
func CheckAndGenerateCertificate(user models.User, quiz models.Quiz, block models.QuestionBlock, scorePercent float64) {
	if scorePercent < certificatePassingPercent {
		return
	}

	var existingCert models.Certificate
	if err := database.DB.Where("user_id = ? AND block_id = ?", user.ID, block.ID).First(&existingCert).Error; err == nil {
		return
	}

	title := fmt.Sprintf("%s - Questions %d to %d", quiz.Title, block.StartIndex+1, block.EndIndex+1)

	displayName := user.Username
	if user.FullName != nil && *user.FullName != "" {
		displayName = *user.FullName
	}

	htmlData, err := generateCertificateHTML(displayName, title, scorePercent)
	if err != nil {
		log.Printf("🔥 Failed to generate certificate HTML: %v", err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate PDF: %v", err)
		return
	}

	uploadURL, err := uploadToCloudinary(pdfBytes, user.ID.String())
	if err != nil {
		log.Printf("🔥 Failed to upload certificate to Cloudinary: %v", err)
		return
	}

	newCertificate := models.Certificate{
		UserID:         user.ID,
		QuizID:         quiz.ID,
		BlockID:        block.ID,
		Title:          title,
		ScorePercent:   scorePercent,
		CompletionDate: time.Now(),
		CertificateURL: uploadURL,
	}

	if err := database.DB.Create(&newCertificate).Error; err != nil {
		log.Printf("🔥 Failed to create certificate record for user %s: %v", user.ID, err)
	} else {
		log.Printf("✅ Generated and uploaded certificate '%s' for user %s.", title, user.ID)
	}
}

func generateCertificateHTML(studentName, title string, scorePercent float64) (string, error) {
	tmpl, err := template.ParseFiles("templates/certificate.html")
	if err != nil {
		return "", err
	}

	data := struct {
		StudentName    string
		Title          string
		ScorePercent   string
		CompletionDate string
	}{
		StudentName:    studentName,
		Title:          title,
		ScorePercent:   fmt.Sprintf("%.0f%%", scorePercent),
		CompletionDate: time.Now().Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadToCloudinary(fileBytes []byte, userID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("certificates/%s_%s", userID, uuid.New().String()),
		Folder:       "exam_study_certificates",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
