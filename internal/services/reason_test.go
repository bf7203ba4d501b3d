package services

import (
	"strings"
	"testing"

	"github.com/team-modeni/modeni-backend/internal/types"
)

func TestBuildTemplateReasonComposesAllParts(t *testing.T) {
	program := &types.WelfareProgram{Title: "가족 요리 교실", Category: "교육"}

	reason := buildTemplateReason(program, types.EmotionHappy, types.ActivityCooking)

	want := "좋은 기분이시네요! " +
		"요리에 관심이 많으신 분에게 " +
		"가족 요리 교실을(를) 추천드려요! " +
		"새로운 지식과 기술을 배우며 성장할 수 있는 기회예요." +
		" 즐거운 시간 보내세요!"
	if reason != want {
		t.Fatalf("reason:\nwant=%q\ngot= %q", want, reason)
	}
}

func TestBuildTemplateReasonDistressCloser(t *testing.T) {
	program := &types.WelfareProgram{Title: "명상 프로그램", Category: "건강"}

	for _, emotion := range []types.EmotionKeyword{types.EmotionDepressed, types.EmotionAnxious} {
		reason := buildTemplateReason(program, emotion, types.ActivityWalking)
		if !strings.HasSuffix(reason, "좋은 사람들과 함께하며 마음의 안정을 찾으실 수 있을 거예요.") {
			t.Fatalf("%s: distress closer missing: %q", emotion, reason)
		}
	}

	reason := buildTemplateReason(program, types.EmotionSad, types.ActivityWalking)
	if !strings.HasSuffix(reason, "즐거운 시간 보내세요!") {
		t.Fatalf("sad is not a distress-closer emotion: %q", reason)
	}
}

func TestBuildTemplateReasonWithoutEmotionOrActivity(t *testing.T) {
	program := &types.WelfareProgram{Title: "주민 문화 축제", Category: "문화"}

	reason := buildTemplateReason(program, "", "")

	if !strings.HasPrefix(reason, "주민 문화 축제을(를) 추천드려요! ") {
		t.Fatalf("reason should start with the title clause: %q", reason)
	}
	if !strings.Contains(reason, "다양한 문화 체험을 통해") {
		t.Fatalf("category closing missing: %q", reason)
	}
}

func TestBuildReasonPromptTraitAware(t *testing.T) {
	program := &types.WelfareProgram{Title: "독서 토론회", Category: "독서"}
	trait := types.PersonalityIntrospectiveGreen

	prompt := buildReasonPrompt(types.EmotionCalmly, types.ActivityReading, &trait, program)

	if !strings.Contains(prompt, "내면형 (초록이)") {
		t.Fatalf("trait line missing: %q", prompt)
	}
	if !strings.Contains(prompt, "성향의 특성을 반영한") {
		t.Fatalf("trait-specific request missing: %q", prompt)
	}
	if !strings.Contains(prompt, "- 대상: 전체") {
		t.Fatalf("target default missing: %q", prompt)
	}
}

func TestBuildReasonPromptWithoutTrait(t *testing.T) {
	program := &types.WelfareProgram{Title: "독서 토론회", Category: "독서", Location: "시립도서관"}

	prompt := buildReasonPrompt(types.EmotionCalmly, types.ActivityReading, nil, program)

	if !strings.Contains(prompt, "성향: 미설정") {
		t.Fatalf("unset trait line missing: %q", prompt)
	}
	if !strings.Contains(prompt, "- 장소: 시립도서관") {
		t.Fatalf("location missing: %q", prompt)
	}
}
