package services

import (
	"fmt"
	"strings"

	"github.com/team-modeni/modeni-backend/internal/types"
)

// buildTemplateReason assembles the deterministic "why this program"
// text: empathetic opener, activity clause, program title, category
// closing, and an extra supportive sentence for distress emotions.
// It never fails, so every persisted recommendation carries a rationale
// before any enrichment runs.
func buildTemplateReason(program *types.WelfareProgram, emotion types.EmotionKeyword, activity types.WishActivity) string {
	var reason strings.Builder

	if emotion != "" {
		switch emotion {
		case types.EmotionDepressed, types.EmotionSad:
			reason.WriteString("요즘 마음이 힘드시군요. ")
		case types.EmotionAnxious, types.EmotionImpatient:
			reason.WriteString("마음이 불안하신 것 같아요. ")
		case types.EmotionHappy, types.EmotionRelaxed:
			reason.WriteString("좋은 기분이시네요! ")
		case "화남", "짜증":
			reason.WriteString("스트레스가 많으신 것 같아요. ")
		default:
			reason.WriteString("오늘의 기분에 맞는 ")
		}
	}

	if activity != "" {
		switch activity {
		case types.ActivityWalking:
			reason.WriteString("산책을 좋아하시는 분에게 ")
		case types.ActivityCooking:
			reason.WriteString("요리에 관심이 많으신 분에게 ")
		case types.ActivityDrawing:
			reason.WriteString("창작 활동을 좋아하시는 분에게 ")
		case types.ActivityMusic:
			reason.WriteString("음악을 사랑하시는 분에게 ")
		case types.ActivityReading:
			reason.WriteString("책 읽기를 좋아하시는 분에게 ")
		case types.ActivityExercising:
			reason.WriteString("활동적인 삶을 좋아하시는 분에게 ")
		case types.ActivityWatchingMovie:
			reason.WriteString("영화를 좋아하시는 분에게 ")
		default:
			reason.WriteString("이런 활동을 좋아하시는 분에게 ")
		}
	}

	reason.WriteString(program.Title)
	reason.WriteString("을(를) 추천드려요! ")

	switch {
	case strings.Contains(program.Category, "문화"):
		reason.WriteString("다양한 문화 체험을 통해 새로운 즐거움을 찾을 수 있어요.")
	case strings.Contains(program.Category, "교육"):
		reason.WriteString("새로운 지식과 기술을 배우며 성장할 수 있는 기회예요.")
	case strings.Contains(program.Category, "여가"):
		reason.WriteString("일상에서 벗어나 편안한 시간을 보낼 수 있어요.")
	case strings.Contains(program.Category, "건강"):
		reason.WriteString("머리와 마음의 건강을 동시에 챙길 수 있는 프로그램이에요.")
	default:
		reason.WriteString("의미 있는 시간을 보내며 새로운 경험을 할 수 있어요.")
	}

	if emotion == types.EmotionDepressed || emotion == types.EmotionAnxious {
		reason.WriteString(" 좋은 사람들과 함께하며 마음의 안정을 찾으실 수 있을 거예요.")
	} else {
		reason.WriteString(" 즐거운 시간 보내세요!")
	}

	return reason.String()
}

// buildReasonPrompt is the enrichment prompt for the generation
// service: free-form warm paragraph, 2-3 sentences, trait-aware when a
// trait is known.
func buildReasonPrompt(emotion types.EmotionKeyword, activity types.WishActivity, trait *types.PersonalityType, program *types.WelfareProgram) string {
	var prompt strings.Builder
	prompt.WriteString("다음 정보를 바탕으로 이 문화 프로그램을 추천하는 개인화된 이유를 2-3문장으로 작성해주세요:\n\n")

	prompt.WriteString("**사용자 정보:**\n")
	fmt.Fprintf(&prompt, "- 현재 감정: %s\n", emotion)
	fmt.Fprintf(&prompt, "- 하고 싶은 활동: %s\n", activity)
	if trait != nil {
		fmt.Fprintf(&prompt, "- 성향: %s (%s) - %s\n", trait.FullName(), trait.Nickname(), trait.Description())
	} else {
		prompt.WriteString("- 성향: 미설정 (일반적인 접근으로 추천)\n")
	}
	prompt.WriteString("\n")

	prompt.WriteString("**추천 프로그램:**\n")
	fmt.Fprintf(&prompt, "- 프로그램명: %s\n", program.Title)
	fmt.Fprintf(&prompt, "- 대상: %s\n", orDefault(program.TargetDescription, "전체"))
	fmt.Fprintf(&prompt, "- 장소: %s\n", orDefault(program.Location, "상시 운영 기관"))
	fmt.Fprintf(&prompt, "- 일정: %s\n", orDefault(program.Schedule, "상시 운영"))
	fmt.Fprintf(&prompt, "- 카테고리: %s\n", program.Category)
	prompt.WriteString("\n")

	prompt.WriteString("**요청:**\n")
	if trait != nil {
		prompt.WriteString("사용자의 현재 감정 상태와 희망 활동, 그리고 성향을 고려하여 ")
		prompt.WriteString("이 프로그램이 왜 이 사용자에게 특별히 도움이 될지 ")
		prompt.WriteString("따뜻하고 공감적인 톤으로 설명해주세요. ")
		prompt.WriteString("성향의 특성을 반영한 구체적인 효과나 장점을 포함해서 작성해주세요.")
	} else {
		prompt.WriteString("사용자의 현재 감정 상태와 희망 활동을 중심으로 ")
		prompt.WriteString("이 프로그램이 왜 도움이 될지 ")
		prompt.WriteString("따뜻하고 공감적인 톤으로 설명해주세요. ")
		prompt.WriteString("일반적이지만 구체적인 효과나 장점을 포함해서 작성해주세요.")
	}

	return prompt.String()
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
