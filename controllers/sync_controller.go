package controllers

import (
	"log"
	"sync"

	"tcgstore/database"
	"tcgstore/models"

	"github.com/gofiber/fiber/v2"
)

// maxConcurrentSyncs bounds in-flight external fetches during a batch
// sync so the marketplace API is not hammered.
const maxConcurrentSyncs = 4

type batchResult struct {
	CardID uint64 `json:"card_id"`
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
}

// SyncMyCards syncs every listed card the caller owns. Per-card
// failures are collected and reported, not fatal for the batch.
func SyncMyCards(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint64)

	var cards []models.Card
	if err := database.DB.Where("user_id = ? AND listed_for_sale = ?", userID, true).Find(&cards).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch cards"})
	}
	if len(cards) == 0 {
		return c.JSON(fiber.Map{"synced": 0, "failed": 0, "results": []batchResult{}})
	}

	results := make([]batchResult, len(cards))
	sem := make(chan struct{}, maxConcurrentSyncs)
	var wg sync.WaitGroup

	for i, card := range cards {
		wg.Add(1)
		go func(i int, cardID uint64) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			_, err := Pricing.SyncCardPricing(cardID)
			if err != nil {
				log.Printf("❌ Batch sync failed for card %d: %v", cardID, err)
				results[i] = batchResult{CardID: cardID, OK: false, Error: err.Error()}
				return
			}
			results[i] = batchResult{CardID: cardID, OK: true}
		}(i, card.ID)
	}
	wg.Wait()

	synced, failed := 0, 0
	for _, r := range results {
		if r.OK {
			synced++
		} else {
			failed++
		}
	}

	return c.JSON(fiber.Map{"synced": synced, "failed": failed, "results": results})
}
