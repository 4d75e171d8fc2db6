package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/badoux/checkmail"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nexthire/models"
	"nexthire/utils"
)

type ContactController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewContactController(db *gorm.DB, logger *log.Logger) *ContactController {
	return &ContactController{
		DB:     db,
		Logger: logger,
	}
}

type CreateContactInput struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
	Company   string `json:"company" validate:"max=200"`
	JobTitle  string `json:"job_title" validate:"max=200"`
}

type UpdateContactInput struct {
	Email          *string    `json:"email"`
	FirstName      *string    `json:"first_name"`
	LastName       *string    `json:"last_name"`
	Company        *string    `json:"company"`
	JobTitle       *string    `json:"job_title"`
	EmailOpened    *bool      `json:"email_opened"`
	HasUnreadReply *bool      `json:"has_unread_reply"`
	EmailOpenedAt  *time.Time `json:"email_opened_at"`
}

// GetContacts lists the user's contacts, newest first.
func (cc *ContactController) GetContacts(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 50)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	var total int64
	if err := cc.DB.Model(&models.Contact{}).Where("user_id = ?", user.ID).Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to count contacts", err)
	}

	var contacts []models.Contact
	if err := cc.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&contacts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to get contacts", err)
	}

	return c.JSON(utils.SuccessResponse(utils.PaginatedResponse{
		Data:  contacts,
		Total: total,
		Page:  page,
		Limit: limit,
	}))
}

// GetContact returns a single contact by ID.
func (cc *ContactController) GetContact(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	contactID := utils.ParseUint(c.Params("id"))

	var contact models.Contact
	if err := cc.DB.Where("id = ? AND user_id = ?", contactID, user.ID).First(&contact).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Contact not found", err)
	}

	return c.JSON(utils.SuccessResponse(contact))
}

// CreateContact adds a contact and logs the matching activities. Adding
// a contact at a company the user has not tracked before also counts as
// a new firm.
func (cc *ContactController) CreateContact(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var input CreateContactInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	if input.Email != "" {
		if err := checkmail.ValidateFormat(input.Email); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid email address", err)
		}
	}

	newFirm := false
	if input.Company != "" {
		var existing int64
		cc.DB.Model(&models.Contact{}).
			Where("user_id = ? AND company = ?", user.ID, input.Company).
			Count(&existing)
		newFirm = existing == 0
	}

	contact := models.Contact{
		UserID:    user.ID,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Company:   input.Company,
		JobTitle:  input.JobTitle,
	}

	now := time.Now()
	err := cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&contact).Error; err != nil {
			return err
		}

		activities := []models.Activity{{
			UserID:     user.ID,
			Type:       models.ActivityContactAdded,
			Summary:    fmt.Sprintf("Added %s", contact.FullName()),
			OccurredAt: now,
		}}
		if newFirm {
			activities = append(activities, models.Activity{
				UserID:     user.ID,
				Type:       models.ActivityFirmAdded,
				Summary:    fmt.Sprintf("Started tracking %s", contact.Company),
				OccurredAt: now,
			})
		}
		return tx.Create(&activities).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create contact", err)
	}

	cc.Logger.Printf("created contact %d for user %d", contact.ID, user.ID)
	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(contact))
}

// UpdateContact applies a partial update to a contact.
func (cc *ContactController) UpdateContact(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	contactID := utils.ParseUint(c.Params("id"))

	var contact models.Contact
	if err := cc.DB.Where("id = ? AND user_id = ?", contactID, user.ID).First(&contact).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Contact not found", err)
	}

	var input UpdateContactInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if input.Email != nil {
		if *input.Email != "" {
			if err := checkmail.ValidateFormat(*input.Email); err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid email address", err)
			}
		}
		contact.Email = *input.Email
	}
	if input.FirstName != nil {
		contact.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		contact.LastName = *input.LastName
	}
	if input.Company != nil {
		contact.Company = *input.Company
	}
	if input.JobTitle != nil {
		contact.JobTitle = *input.JobTitle
	}
	if input.EmailOpened != nil {
		contact.EmailOpened = *input.EmailOpened
	}
	if input.HasUnreadReply != nil {
		contact.HasUnreadReply = *input.HasUnreadReply
	}
	if input.EmailOpenedAt != nil {
		contact.EmailOpenedAt = input.EmailOpenedAt
	}

	if err := cc.DB.Save(&contact).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update contact", err)
	}

	return c.JSON(utils.SuccessResponse(contact))
}

// TouchContact records an interaction with a contact, resetting its
// follow-up clock.
func (cc *ContactController) TouchContact(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	contactID := utils.ParseUint(c.Params("id"))

	var contact models.Contact
	if err := cc.DB.Where("id = ? AND user_id = ?", contactID, user.ID).First(&contact).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Contact not found", err)
	}

	now := time.Now()
	contact.LastContactedAt = &now

	err := cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&contact).Error; err != nil {
			return err
		}
		// A fresh touch makes any open reminder stale.
		return tx.Where("user_id = ? AND contact_id = ?", user.ID, contact.ID).
			Delete(&models.Reminder{}).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to record contact touch", err)
	}

	return c.JSON(utils.SuccessResponse(contact))
}

// DeleteContact removes a contact and its reminders.
func (cc *ContactController) DeleteContact(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	contactID := utils.ParseUint(c.Params("id"))

	var contact models.Contact
	if err := cc.DB.Where("id = ? AND user_id = ?", contactID, user.ID).First(&contact).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Contact not found", err)
	}

	err := cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND contact_id = ?", user.ID, contact.ID).
			Delete(&models.Reminder{}).Error; err != nil {
			return err
		}
		return tx.Delete(&contact).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete contact", err)
	}

	return c.JSON(utils.SuccessResponse(fiber.Map{"deleted": contact.ID}))
}
