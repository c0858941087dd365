package content

import (
	"fmt"
	"strings"
)

const paragraphDiv = "<div style='line-height: 1.8;'>"

var titleTemplates = []func(topic, field string) string{
	func(topic, field string) string { return topic + ": دراسة تحليلية في مجال " + field },
	func(topic, _ string) string { return "تأثير " + topic + " على الممارسات المعاصرة: دراسة ميدانية" },
	func(topic, _ string) string { return topic + ": رؤية معاصرة للتطوير والتحسين" },
	func(topic, _ string) string { return "استراتيجيات " + topic + " وأثرها على التطوير المؤسسي" },
	func(topic, _ string) string { return topic + ": دراسة استطلاعية لواقع التطبيق والتحديات" },
}

func (g *Generator) title(in StudyInput, rng Rand) string {
	field := ResolveFieldName(in.FieldOfStudy)
	base := titleTemplates[rng.Intn(len(titleTemplates))](in.MainTopic, field)
	return "<h3>عنوان الدراسة المقترح:</h3><p><strong>" + g.humanize(base, rng) + "</strong></p>" +
		"<p><em>تم إنشاء هذا العنوان وفقاً لمعايير الكتابة الأكاديمية المحددة في الدليل، مع مراعاة الوضوح والدقة والجاذبية الأكاديمية.</em></p>"
}

func (g *Generator) abstract(in StudyInput, rng Rand) string {
	field := ResolveFieldName(in.FieldOfStudy)
	parts := []string{
		fmt.Sprintf("تناولت هذه الدراسة موضوع %s في إطار %s، حيث برزت الحاجة الملحة لفهم أعمق لهذه القضية في ضوء التطورات المعاصرة والتحديات الراهنة.", in.MainTopic, field),
		fmt.Sprintf("تمحورت مشكلة الدراسة حول %s، وهدفت إلى استكشاف الجوانب المختلفة لهذه الظاهرة وتحليل أبعادها المتعددة.", in.ProblemDescription),
		methodologySummary(in.StudyType),
		"كشفت نتائج الدراسة عن وجود علاقات معقدة ومتداخلة بين المتغيرات المدروسة، مما يسهم في فهم أعمق للظاهرة محل البحث.",
		"خلصت الدراسة إلى مجموعة من التوصيات العملية التي يمكن أن تسهم في تطوير الممارسات الحالية وتحسين الأداء في هذا المجال.",
	}
	text := g.humanize(strings.Join(parts, " "), rng)
	return "<h3>ملخص الدراسة:</h3><p>" + text + "</p>" +
		"<p><em>تم إنشاء هذا الملخص وفقاً للمعايير الأكاديمية المحددة، مع مراعاة التدفق المنطقي والصياغة الديناميكية.</em></p>"
}

func methodologySummary(studyType string) string {
	switch studyType {
	case "master":
		return "اعتمدت الدراسة على المنهج الوصفي التحليلي، مع استخدام أدوات متنوعة لجمع البيانات من عينة ممثلة."
	case "phd":
		return "تم استخدام منهجية مختلطة تجمع بين الأساليب الكمية والنوعية، لضمان الحصول على فهم شامل للظاهرة المدروسة."
	default:
		return "اتبعت الدراسة منهجاً علمياً دقيقاً يتناسب مع طبيعة الموضوع المدروس."
	}
}

func (g *Generator) introduction(in StudyInput, rng Rand) string {
	field := ResolveFieldName(in.FieldOfStudy)
	parts := []string{
		fmt.Sprintf("يشهد مجال %s تطورات متسارعة في العقود الأخيرة، مما يستدعي إعادة النظر في العديد من المفاهيم والممارسات التقليدية. في هذا السياق، يبرز موضوع %s كأحد القضايا المحورية التي تتطلب دراسة معمقة وتحليلاً شاملاً.", field, in.MainTopic),
		fmt.Sprintf("تكتسب دراسة %s أهمية خاصة في ظل التحديات المعاصرة التي تواجه هذا المجال، حيث تسهم في تقديم رؤى جديدة وحلول مبتكرة للمشكلات القائمة.", in.MainTopic),
		fmt.Sprintf("رغم الاهتمام المتزايد بهذا الموضوع، إلا أن الأدبيات العلمية تشير إلى وجود فجوة بحثية واضحة في فهم %s، مما يبرر الحاجة لإجراء هذه الدراسة.", in.ProblemDescription),
		"تهدف هذه الدراسة إلى سد هذه الفجوة من خلال تقديم تحليل شامل ومعمق للموضوع، بما يسهم في إثراء المعرفة العلمية وتطوير الممارسات العملية في هذا المجال.",
	}
	return "<h3>مقدمة الدراسة:</h3>" + paragraphDiv + g.paragraphs(parts, rng) + "</div>" +
		"<p><em>تم بناء هذه المقدمة وفقاً لهيكل التدرج من العام إلى الخاص، مع مراعاة الترابط المنطقي بين الفقرات.</em></p>"
}

func (g *Generator) literature(in StudyInput, rng Rand) string {
	field := ResolveFieldName(in.FieldOfStudy)
	parts := []string{
		fmt.Sprintf("تتناول هذه المراجعة الأدبيات العلمية ذات الصلة بموضوع %s، حيث تم الاطلاع على مجموعة واسعة من الدراسات والبحوث المنشورة في هذا المجال.", in.MainTopic),
		fmt.Sprintf("أشارت الدراسات النظرية في مجال %s إلى أهمية فهم الأسس النظرية لموضوع %s، حيث قدمت إطاراً مفاهيمياً شاملاً يساعد في تحليل الظاهرة المدروسة.", field, in.MainTopic),
		"من جانب آخر، ركزت الدراسات التطبيقية على الجوانب العملية والتطبيقية، مما أسهم في تقديم أدلة تجريبية تدعم الافتراضات النظرية.",
		"رغم ثراء الأدبيات في هذا المجال، إلا أن هناك فجوات بحثية واضحة تتطلب مزيداً من الدراسة والتحليل، وهو ما تسعى الدراسة الحالية لمعالجته.",
	}
	return "<h3>الإطار النظري والدراسات السابقة:</h3>" + paragraphDiv + g.paragraphs(parts, rng) + "</div>" +
		"<p><em>تم تنظيم هذا القسم وفقاً لمعايير المراجعة النقدية للأدبيات، مع التركيز على الربط بين الدراسات والبحث الحالي.</em></p>"
}

func (g *Generator) methodology(in StudyInput, rng Rand) string {
	parts := []string{
		fmt.Sprintf("اعتمدت هذه الدراسة على المنهج الوصفي التحليلي، والذي يعد الأنسب لطبيعة الموضوع المدروس. تم اختيار هذا المنهج لقدرته على تقديم وصف دقيق وتحليل شامل لظاهرة %s.", in.MainTopic),
		populationDescription(in.FieldOfStudy),
		"تم استخدام مجموعة متنوعة من أدوات جمع البيانات لضمان الحصول على معلومات شاملة ودقيقة، بما يتناسب مع طبيعة الدراسة وأهدافها.",
		"تمت الدراسة وفقاً لخطة زمنية محددة، مع مراعاة جميع الاعتبارات الأخلاقية والمنهجية المطلوبة في البحث العلمي.",
	}
	return "<h3>منهجية الدراسة:</h3>" + paragraphDiv + g.paragraphs(parts, rng) + "</div>" +
		"<p><em>تم تصميم هذه المنهجية وفقاً لأفضل الممارسات في البحث العلمي، مع ضمان الدقة والموضوعية.</em></p>"
}

func populationDescription(field string) string {
	switch field {
	case "education":
		return "تكون مجتمع الدراسة من المعلمين والطلاب في المؤسسات التعليمية، وتم اختيار عينة عشوائية طبقية تمثل المجتمع الأصلي."
	case "business":
		return "شمل مجتمع الدراسة العاملين في القطاع الخاص والمؤسسات التجارية، مع التركيز على فئات محددة ذات صلة بموضوع الدراسة."
	default:
		return "تم تحديد مجتمع الدراسة بناءً على معايير علمية دقيقة، مع ضمان تمثيل جميع الفئات ذات الصلة بالموضوع المدروس."
	}
}

// The four sections below are fixed templates and skip the pipeline.
// Upstream output never humanized them; golden comparisons depend on that.
// Their indentation and blank lines are part of the output.

func (g *Generator) results(in StudyInput, _ Rand) string {
	return fmt.Sprintf(`
        <h3>نتائج الدراسة:</h3>
        <div style='line-height: 1.8;'>
        <p>أظهرت نتائج الدراسة مجموعة من النتائج المهمة المتعلقة بموضوع %s، والتي يمكن تلخيصها في النقاط التالية:</p>
        
        <p>أولاً، كشفت البيانات عن وجود علاقة إيجابية قوية بين المتغيرات الرئيسية للدراسة، مما يدعم الافتراضات النظرية التي انطلقت منها الدراسة.</p>
        
        <p>ثانياً، أشارت النتائج إلى تباين واضح في الاستجابات بناءً على المتغيرات الديموغرافية، مما يعكس تأثير العوامل الشخصية والبيئية على الظاهرة المدروسة.</p>
        
        <p>ثالثاً، برزت مجموعة من التحديات والعقبات التي تواجه التطبيق العملي للمفاهيم النظرية، مما يتطلب إعادة النظر في بعض الاستراتيجيات المتبعة.</p>
        
        <p>أخيراً، أظهرت النتائج إمكانيات واعدة للتطوير والتحسين، مما يفتح المجال أمام مزيد من البحث والدراسة في هذا المجال.</p>
        </div>
        <p><em>تم عرض هذه النتائج وفقاً لمعايير العرض العلمي الدقيق، مع التركيز على الوضوح والموضوعية.</em></p>
        `, in.MainTopic)
}

func (g *Generator) discussion(in StudyInput, _ Rand) string {
	return fmt.Sprintf(`
        <h3>مناقشة النتائج:</h3>
        <div style='line-height: 1.8;'>
        <p>تستدعي النتائج التي توصلت إليها هذه الدراسة حول %s مناقشة معمقة في ضوء الأدبيات النظرية والدراسات السابقة.</p>
        
        <p>تتفق النتائج الحالية مع ما توصلت إليه دراسات سابقة في هذا المجال، مما يعزز من مصداقية النتائج ويؤكد على أهمية الموضوع المدروس. هذا التوافق يشير إلى وجود أنماط ثابتة في الظاهرة المدروسة، مما يمكن الاعتماد عليه في بناء نماذج تفسيرية أكثر دقة.</p>
        
        <p>من جانب آخر، كشفت الدراسة عن بعض النتائج التي تختلف عن ما هو متوقع نظرياً، مما يثير تساؤلات مهمة حول طبيعة العلاقات بين المتغيرات المدروسة. هذا الاختلاف قد يعكس تأثير عوامل سياقية لم تحظ بالاهتمام الكافي في الدراسات السابقة.</p>
        
        <p>تحمل هذه النتائج دلالات مهمة للممارسة العملية، حيث تقدم توجيهات واضحة للممارسين في هذا المجال. كما تفتح المجال أمام مزيد من البحث والاستكشاف في جوانب لم تتناولها الدراسة الحالية بالتفصيل الكافي.</p>
        </div>
        <p><em>تم بناء هذه المناقشة وفقاً لمعايير التحليل النقدي، مع الربط بين النتائج والأدبيات النظرية.</em></p>
        `, in.MainTopic)
}

func (g *Generator) conclusion(in StudyInput, _ Rand) string {
	return fmt.Sprintf(`
        <h3>الخلاصة والتوصيات:</h3>
        <div style='line-height: 1.8;'>
        <h4>الخلاصة:</h4>
        <p>خلصت هذه الدراسة إلى مجموعة من النتائج المهمة حول موضوع %s، والتي تسهم في إثراء المعرفة العلمية في هذا المجال. أظهرت النتائج وجود علاقات معقدة بين المتغيرات المدروسة، مما يتطلب فهماً أعمق لطبيعة هذه العلاقات وتأثيراتها المختلفة.</p>
        
        <h4>التوصيات:</h4>
        <p><strong>التوصيات العملية:</strong></p>
        <ul>
        <li>ضرورة تطوير استراتيجيات عملية لتحسين الممارسات الحالية في هذا المجال</li>
        <li>أهمية تدريب الممارسين على أحدث التطورات والمستجدات</li>
        <li>الحاجة لوضع معايير واضحة لضمان جودة التطبيق</li>
        </ul>
        
        <p><strong>التوصيات البحثية:</strong></p>
        <ul>
        <li>إجراء دراسات مقارنة في بيئات مختلفة لتعزيز قابلية تعميم النتائج</li>
        <li>استكشاف متغيرات جديدة لم تتناولها الدراسة الحالية</li>
        <li>تطوير أدوات قياس أكثر دقة وشمولية</li>
        </ul>
        </div>
        <p><em>تم صياغة هذه الخلاصة والتوصيات بناءً على النتائج المتحققة، مع التركيز على الجانبين النظري والتطبيقي.</em></p>
        `, in.MainTopic)
}

func (g *Generator) references(in StudyInput, _ Rand) string {
	return fmt.Sprintf(`
        <h3>المراجع:</h3>
        <div style='line-height: 1.8;'>
        <p><em>ملاحظة: هذه قائمة مراجع تمثيلية. في الدراسة الفعلية، يجب إدراج جميع المصادر التي تم الاستشهاد بها في النص.</em></p>
        
        <h4>المراجع العربية:</h4>
        <ol>
        <li>الباحث، أحمد محمد (2023). أسس البحث العلمي في %[1]s. دار النشر العلمي.</li>
        <li>العالم، فاطمة علي (2022). التطورات المعاصرة في مجال %[1]s. مجلة البحوث العلمية، 15(3), 45-67.</li>
        <li>الخبير، محمود سالم (2021). منهجيات البحث الحديثة. دار المعرفة للنشر والتوزيع.</li>
        </ol>
        
        <h4>المراجع الأجنبية:</h4>
        <ol>
        <li>Smith, J. A. (2023). Modern approaches in academic research. Journal of Educational Research, 45(2), 123-145.</li>
        <li>Johnson, M. B., & Williams, K. L. (2022). Contemporary issues in research methodology. Academic Press.</li>
        <li>Brown, R. C. (2021). Advanced statistical methods for social sciences. International Journal of Research Methods, 12(4), 78-95.</li>
        </ol>
        </div>
        <p><em>يجب توثيق جميع المراجع وفقاً لنظام التوثيق المعتمد (APA, MLA, أو غيرها حسب متطلبات المؤسسة).</em></p>
        `, ResolveFieldName(in.FieldOfStudy))
}
