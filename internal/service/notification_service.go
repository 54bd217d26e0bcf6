package service

import (
	"fmt"

	"freeco/internal/domain"
	"freeco/internal/models"
	"freeco/internal/repository"
	"freeco/pkg/mailer"
)

// NotificationService is the single place mutations emit notifications
// through. Persisting the row is the contract; the email copy is best
// effort and could move behind a queue without touching callers.
type NotificationService struct {
	repo     *repository.NotificationRepository
	userRepo *repository.UserRepository
	mail     *mailer.Mailer
}

func NewNotificationService(repo *repository.NotificationRepository, userRepo *repository.UserRepository, mail *mailer.Mailer) *NotificationService {
	return &NotificationService{repo: repo, userRepo: userRepo, mail: mail}
}

func (s *NotificationService) Notify(userID uint, notifType, content, relatedType string, relatedID uint) error {
	err := s.repo.Create(&models.Notification{
		UserID:      userID,
		Type:        notifType,
		Content:     content,
		RelatedType: relatedType,
		RelatedID:   relatedID,
	})
	if err != nil {
		return err
	}
	s.sendEmailCopy(userID, notifType, content)
	return nil
}

var emailSubjects = map[string]string{
	domain.NotificationInterestReceived: "New Interest Received",
	domain.NotificationInterestAccepted: "Interest Accepted",
	domain.NotificationInterestRejected: "Interest Rejected",
	domain.NotificationListingApproved:  "Your Ad Has Been Approved",
	domain.NotificationListingRejected:  "Your Ad Has Been Rejected",
	domain.NotificationMessage:          "New Message",
}

func (s *NotificationService) sendEmailCopy(userID uint, notifType, content string) {
	if s.mail == nil || s.userRepo == nil {
		return
	}
	u, err := s.userRepo.GetByID(userID)
	if err != nil || u == nil {
		return
	}
	subject, ok := emailSubjects[notifType]
	if !ok {
		subject = "New Notification"
	}
	go s.mail.SendNotification(u.Email, subject, content)
}

func (s *NotificationService) NotifyListingCreated(ownerID uint, tag string, listingID uint) error {
	content := fmt.Sprintf("Your %s listing has been created and is pending approval", tag)
	return s.Notify(ownerID, domain.NotificationListingCreated, content, models.RelatedListing, listingID)
}

func (s *NotificationService) NotifyInterestReceived(ownerID uint, tag string, interestID uint) error {
	content := fmt.Sprintf("New interest received for your %s listing", tag)
	return s.Notify(ownerID, domain.NotificationInterestReceived, content, models.RelatedInterest, interestID)
}

func (s *NotificationService) NotifyInterestResolved(senderID uint, status string, interestID uint) error {
	notifType := domain.NotificationInterestAccepted
	if status == domain.InterestStatusRejected {
		notifType = domain.NotificationInterestRejected
	}
	content := fmt.Sprintf("Your interest was %s for the listing", status)
	return s.Notify(senderID, notifType, content, models.RelatedInterest, interestID)
}

func (s *NotificationService) NotifyListingReviewed(ownerID uint, tag string, approved bool, listingID uint) error {
	notifType := domain.NotificationListingApproved
	verdict := "approved"
	if !approved {
		notifType = domain.NotificationListingRejected
		verdict = "rejected"
	}
	content := fmt.Sprintf("Your %s listing has been %s", tag, verdict)
	return s.Notify(ownerID, notifType, content, models.RelatedListing, listingID)
}
