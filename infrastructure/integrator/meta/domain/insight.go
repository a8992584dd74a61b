package metadomain

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

// AccountInsight é a linha de insights de conta como o Graph devolve:
// todos os números chegam como string
type AccountInsight struct {
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
	Spend       string `json:"spend"`
	Impressions string `json:"impressions"`
	Reach       string `json:"reach"`
	Clicks      string `json:"clicks"`
	Frequency   string `json:"frequency"`
	CPC         string `json:"cpc"`
	CTR         string `json:"ctr"`
	DateStart   string `json:"date_start"`
	DateStop    string `json:"date_stop"`
}

type CampaignInsight struct {
	CampaignID     string   `json:"campaign_id"`
	CampaignName   string   `json:"campaign_name"`
	Objective      string   `json:"objective"`
	Spend          string   `json:"spend"`
	Impressions    string   `json:"impressions"`
	Reach          string   `json:"reach"`
	Clicks         string   `json:"clicks"`
	Actions        []Action `json:"actions"`
	CostPerActions []Action `json:"cost_per_action_type"`
	DateStart      string   `json:"date_start"`
	DateStop       string   `json:"date_stop"`
}

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// MetaObjectiveToActionType mapeia o objetivo da campanha para a ação que
// conta como "resultado" nos cartões de analytics
var MetaObjectiveToActionType = map[string]string{
	"OUTCOME_LEADS":      "lead",
	"OUTCOME_SALES":      "purchase",
	"OUTCOME_TRAFFIC":    "link_click",
	"OUTCOME_ENGAGEMENT": "post_engagement",
	"OUTCOME_AWARENESS":  "reach",
	"LINK_CLICKS":        "link_click",
	"LEAD_GENERATION":    "lead",
	"CONVERSIONS":        "purchase",
	"MESSAGES":           "onsite_conversion.messaging_conversation_started_7d",
}

// GetResult devolve o total da ação correspondente ao objetivo
func (c *CampaignInsight) GetResult() int {
	actionType, ok := MetaObjectiveToActionType[c.Objective]
	if !ok {
		logrus.WithField("objective", c.Objective).Debug("Objetivo sem ação mapeada")
		return 0
	}

	for _, action := range c.Actions {
		if action.ActionType != actionType {
			continue
		}

		value, err := strconv.Atoi(action.Value)
		if err != nil {
			logrus.WithError(err).Error("Erro ao converter valor da ação")
			return 0
		}
		return value
	}

	return 0
}

// GetCostPerResult devolve o custo da ação correspondente ao objetivo
func (c *CampaignInsight) GetCostPerResult() float64 {
	actionType, ok := MetaObjectiveToActionType[c.Objective]
	if !ok {
		return 0
	}

	for _, action := range c.CostPerActions {
		if action.ActionType != actionType {
			continue
		}

		value, err := strconv.ParseFloat(action.Value, 64)
		if err != nil {
			logrus.WithError(err).Error("Erro ao converter custo por ação")
			return 0
		}
		return value
	}

	return 0
}
