/*
 * Copyright 2026 StorePulse Contributors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package views

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/storepulse/storepulse/pkg/models"
)

// ProductModal renders the product detail overlay.
func (r *Renderer) ProductModal(product *models.Product) string {
	if product == nil {
		return ""
	}

	category := "Uncategorized"
	if product.Category != nil {
		category = product.Category.Name
	}

	description := "No description available."
	if product.Description != nil && *product.Description != "" {
		description = *product.Description
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		r.styles.Title.Render(product.Name),
		r.styles.Dim.Render(fmt.Sprintf("SKU %s • %s", product.SKU, category)),
		"",
		description,
		"",
		r.styles.Bright.Render("$"+FormatAmount(product.Price)),
		"",
		r.styles.Help.Render("esc → close"),
	)

	return r.styles.Modal.Render(body)
}

// ConfirmReplay renders the replay confirmation overlay for a failed
// order.
func (r *Renderer) ConfirmReplay(order *models.FailedOrder) string {
	if order == nil {
		return ""
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		r.styles.Warning.Render(fmt.Sprintf("Replay order #%d?", order.ID)),
		"",
		r.styles.Dim.Render(order.ErrorMessage),
		r.styles.Dim.Render(fmt.Sprintf("Retried %d times so far.", order.RetryCount)),
		"",
		r.styles.Help.Render("enter → confirm • esc → cancel"),
	)

	return r.styles.Modal.Render(body)
}

// Notice renders a blocking notification overlay. Dismissed with any
// key, matching an alert dialog.
func (r *Renderer) Notice(message string, isError bool) string {
	style := r.styles.Success
	if isError {
		style = r.styles.Danger
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		style.Render(message),
		"",
		r.styles.Help.Render("press any key to dismiss"),
	)

	return r.styles.Modal.Render(body)
}
