// Package content holds the fixed copy of the landing page: the ordered link
// and social lists, the hero text and the three informational dialogs.
package content

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/dohaquest/questlinks/model"
)

var links = []model.LinkEntry{
	{
		Destination: "https://dohaquest.com/attractions",
		Icon:        model.IconSparkles,
		Title:       "اكتشف الألعاب",
		Subtitle:    "أكثر من 30 منطقة جذب مذهلة",
		RevealDelay: 450 * time.Millisecond,
	},
	{
		Destination: "https://dohaquest.com/plan-your-visit",
		Icon:        model.IconCalendar,
		Title:       "خطط لزيارتك",
		Subtitle:    "ساعات العمل، الأسعار، والمعلومات الهامة",
		RevealDelay: 550 * time.Millisecond,
	},
	{
		Destination: "https://maps.google.com/?q=Quest+Doha",
		Icon:        model.IconMapPin,
		Title:       "موقعنا في الدوحة",
		Subtitle:    "مشيرب قلب الدوحة، واحة الدوحة",
		RevealDelay: 650 * time.Millisecond,
	},
	{
		Destination: "mailto:info@dohaquest.com",
		Icon:        model.IconMail,
		Title:       "تواصل معنا",
		Subtitle:    "info@dohaquest.com",
		RevealDelay: 750 * time.Millisecond,
	},
}

var socials = []model.SocialEntry{
	{Destination: "https://instagram.com/dohaquest", Icon: model.IconInstagram, Label: "Instagram", RevealDelay: 850 * time.Millisecond},
	{Destination: "https://twitter.com/dohaquest", Icon: model.IconTwitter, Label: "Twitter", RevealDelay: 950 * time.Millisecond},
	{Destination: "https://facebook.com/dohaquest", Icon: model.IconFacebook, Label: "Facebook", RevealDelay: 1050 * time.Millisecond},
	{Destination: "https://tiktok.com/@dohaquest", Icon: model.IconCamera, Label: "TikTok", RevealDelay: 1150 * time.Millisecond},
}

var hero = model.Hero{
	Brand:         "كويست الدوحة",
	Badge:         "تجربة آمنة ومليئة بالمغامرة",
	Intro:         "استمتع بأكثر من 30 لعبة ومنطقة جذب تحت سقف واحد في قلب الدوحة.",
	LogoAlt:       "Quest Doha Logo",
	BackgroundAlt: "Quest Doha Interior",
	Copyright:     "كويست الدوحة. جميع الحقوق محفوظة.",
	CloseLabel:    "إغلاق النافذة",
}

var triggers = []model.Trigger{
	{Modal: model.ModalAbout, Label: "من نحن"},
	{Modal: model.ModalPrivacy, Label: "سياسة الخصوصية"},
	{Modal: model.ModalSecurity, Label: "قواعد الأمن والسلامة"},
}

var modals = map[model.ModalID]model.ModalContent{
	model.ModalAbout: {
		ID:    model.ModalAbout,
		Title: "من نحن - كويست الدوحة",
		Blocks: []model.Block{
			para(`كويست الدوحة هي أول مدينة ملاهي داخلية عالمية المستوى في قطر، تقع في قلب مشيرب ضمن مشروع "واحة الدوحة" المذهل.`),
			heading("مهمتنا"),
			para("نسعى لتوفير تجربة ترفيهية غامرة تجمع بين الإثارة، الخيال، والابتكار، لخلق ذكريات لا تُنسى لجميع زوارنا من مختلف الأعمار."),
			heading("ما يميزنا"),
			para(`نحن فخورون باحتضاننا لأرقام قياسية عالمية، بما في ذلك "إيبي كيو" (أطول أفعوانية داخلية في العالم) و"ماجما بلاست" (أعلى برج هبوط داخلي في العالم). تنقسم كويست إلى ثلاث مناطق زمنية: الماضي (مدينة الخيال)، الحاضر (واحة الدوحة)، والمستقبل (محطة الفضاء).`),
		},
	},
	model.ModalPrivacy: {
		ID:    model.ModalPrivacy,
		Title: "سياسة الخصوصية",
		Blocks: []model.Block{
			para("نحن في كويست الدوحة نلتزم بحماية خصوصيتك. توضح هذه السياسة كيفية جمع واستخدام وحماية معلوماتك الشخصية عند استخدام خدماتنا."),
			heading("جمع المعلومات"),
			para("نقوم بجمع المعلومات التي تقدمها لنا عند حجز التذاكر أو التواصل معنا، مثل الاسم والبريد الإلكتروني."),
			heading("استخدام البيانات"),
			para("نستخدم بياناتك لتحسين تجربتك، ومعالجة الحجوزات، وإرسال التحديثات الهامة المتعلقة بزيارتك."),
			heading("حماية البيانات"),
			para("نطبق إجراءات أمنية صارمة لضمان عدم الوصول غير المصرح به إلى معلوماتك الشخصية."),
		},
	},
	model.ModalSecurity: {
		ID:    model.ModalSecurity,
		Title: "قواعد الأمن والسلامة",
		Blocks: []model.Block{
			para("سلامتكم هي أولويتنا القصوى. يرجى اتباع القواعد التالية لضمان تجربة آمنة وممتعة للجميع:"),
			{Kind: model.BlockList, Items: []string{
				"يرجى اتباع تعليمات موظفي التشغيل في جميع الأوقات.",
				"تأكد من استيفاء متطلبات الطول والوزن لكل لعبة قبل الركوب.",
				"يمنع التدخين أو تناول الأطعمة والمشروبات داخل مناطق الألعاب.",
				"يرجى الحفاظ على ممتلكاتك الشخصية في الخزائن المخصصة.",
				"نحن نراقب الموقع بالكاميرات لضمان سلامة الجميع.",
			}},
		},
	},
}

func para(text string) model.Block {
	return model.Block{Kind: model.BlockParagraph, Text: text}
}

func heading(text string) model.Block {
	return model.Block{Kind: model.BlockHeading, Text: text}
}

// Links returns the link entries in display order.
func Links() []model.LinkEntry {
	return slices.Clone(links)
}

// Socials returns the social entries in display order.
func Socials() []model.SocialEntry {
	return slices.Clone(socials)
}

func Hero() model.Hero {
	return hero
}

// Triggers returns the footer triggers in display order.
func Triggers() []model.Trigger {
	return slices.Clone(triggers)
}

// Modal returns the static dialog content for id. The second result is false
// for ids outside the enumeration.
func Modal(id model.ModalID) (model.ModalContent, bool) {
	m, ok := modals[id]
	if !ok {
		return model.ModalContent{}, false
	}

	m.Blocks = slices.Clone(m.Blocks)

	return m, true
}

// Validate checks the registry invariants and reports every violation.
func Validate() error {
	return validate(links, socials)
}

func validate(links []model.LinkEntry, socials []model.SocialEntry) error {
	var errs []error

	seen := make(map[string]bool, len(links)+len(socials))
	checkDestination := func(kind string, i int, dest string) {
		if strings.TrimSpace(dest) == "" {
			errs = append(errs, fmt.Errorf("%s %d: empty destination", kind, i))

			return
		}

		if _, err := url.Parse(dest); err != nil {
			errs = append(errs, fmt.Errorf("%s %d: invalid destination %q: %w", kind, i, dest, err))
		}

		if seen[dest] {
			errs = append(errs, fmt.Errorf("%s %d: duplicate destination %q", kind, i, dest))
		}

		seen[dest] = true
	}

	var last time.Duration = -1

	checkDelay := func(kind string, i int, delay time.Duration) {
		if delay <= last {
			errs = append(errs, fmt.Errorf("%s %d: reveal delay %s does not follow %s", kind, i, delay, last))
		}

		last = delay
	}

	for i, l := range links {
		checkDestination("link", i, l.Destination)

		if strings.TrimSpace(l.Title) == "" {
			errs = append(errs, fmt.Errorf("link %d: empty title", i))
		}

		checkDelay("link", i, l.RevealDelay)
	}

	for i, s := range socials {
		checkDestination("social", i, s.Destination)

		if strings.TrimSpace(s.Label) == "" {
			errs = append(errs, fmt.Errorf("social %d: empty label", i))
		}

		checkDelay("social", i, s.RevealDelay)
	}

	for _, id := range model.ModalIDs {
		m, ok := modals[id]
		if !ok || m.Title == "" || len(m.Blocks) == 0 {
			errs = append(errs, fmt.Errorf("modal %s: missing content", id))
		}
	}

	return errors.Join(errs...)
}
