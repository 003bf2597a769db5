// Package corpus holds the static Ayurvedic knowledge base used to seed
// the vector store. Entries carry rich metadata for condition-based
// retrieval; ids are stable so reseeding overwrites in place.
package corpus

import "ayurrag/internal/models"

const herbDisclaimer = "DISCLAIMER: Consult a qualified Ayurvedic practitioner before starting any herbal regimen."

var Conditions = []models.KnowledgeEntry{
	{
		ID:        "diabetes_overview",
		Condition: "Diabetes",
		Dosha:     "Kapha",
		Type:      models.EntryTypeConditionOverview,
		Text: "Diabetes (Madhumeha) in Ayurveda is classified under Prameha, a group of urinary disorders. " +
			"Madhumeha is the most severe form, primarily caused by Kapha dosha aggravation along with vitiation of Vata. " +
			"It involves impaired metabolism of glucose, accumulation of ama (metabolic waste), and weakening of ojas (vital energy). " +
			"Causes include sedentary lifestyle and excessive intake of sweet, oily, and heavy foods. " +
			"Treatment involves Kapha-pacifying diet, herbal formulations, fasting protocols, Panchakarma therapies, and regular exercise.",
	},
	{
		ID:        "acidity_overview",
		Condition: "Acidity",
		Dosha:     "Pitta",
		Type:      models.EntryTypeConditionOverview,
		Text: "Acidity (Amlapitta) is a Pitta disorder in Ayurveda, caused by excessive production of sour (amla) gastric acids. " +
			"Triggers include spicy food, irregular eating, stress, alcohol, and suppression of natural urges. " +
			"Symptoms include heartburn, sour belching, vomiting, nausea, and discomfort in the chest and stomach. " +
			"Ayurvedic management involves cooling and alkaline foods, Pitta-pacifying herbs, lifestyle regularization, " +
			"and therapies like Virechana (therapeutic purgation) and Shirodhara for stress-related acidity.",
	},
	{
		ID:        "thyroid_overview",
		Condition: "Thyroid",
		Dosha:     "Vata-Kapha",
		Type:      models.EntryTypeConditionOverview,
		Text: "Thyroid disorders in Ayurveda correlate to Galaganda (goitre) and are linked to Kapha and Vata imbalance. " +
			"Hypothyroidism maps to Kapha dominance: sluggishness, weight gain, cold intolerance. " +
			"Hyperthyroidism maps to Pitta-Vata: anxiety, weight loss, heat intolerance. " +
			"Ayurvedic treatment includes Kanchanar Guggulu, Triphala, specific diet modifications, Nasya therapy, " +
			"and yoga practices to stimulate the thyroid gland via the throat chakra (Vishuddha).",
	},
	{
		ID:        "anxiety_overview",
		Condition: "Anxiety",
		Dosha:     "Vata",
		Type:      models.EntryTypeConditionOverview,
		Text: "Anxiety and stress disorders in Ayurveda are classified as Chittodvega, an aggravation of Vata dosha " +
			"in the mind and nervous system. Causes include excessive mental activity, irregular routines, poor sleep, " +
			"trauma, and sensory overload. Symptoms include restlessness, fear, palpitations, insomnia, and overthinking. " +
			"Ayurvedic treatment focuses on Vata pacification through grounding foods, warm oil massage (Abhyanga), " +
			"Shirodhara, Ashwagandha, Brahmi, and establishing a stable daily routine (Dinacharya).",
	},
}

var Herbs = []models.KnowledgeEntry{
	{
		ID:        "bitter_melon_diabetes",
		Condition: "Diabetes",
		Herb:      "Bitter Melon (Karela)",
		Dosha:     "Kapha",
		Type:      models.EntryTypeHerb,
		Text: "Bitter Melon (Momordica charantia), known as Karela, is one of the most potent anti-diabetic herbs in Ayurveda. " +
			"It contains charantin, vicine, and polypeptide-p, compounds with insulin-like activity that lower blood glucose. " +
			"For Madhumeha, Karela pacifies Kapha and removes ama from the dhatus. " +
			"Dosage guidance: 50-100 ml fresh juice in the morning or 500 mg extract capsule before meals. " + herbDisclaimer,
	},
	{
		ID:        "fenugreek_diabetes",
		Condition: "Diabetes",
		Herb:      "Fenugreek (Methi)",
		Dosha:     "Kapha-Vata",
		Type:      models.EntryTypeHerb,
		Text: "Fenugreek (Trigonella foenum-graecum), known as Methi, is a classical Ayurvedic herb for diabetes management. " +
			"Its soluble fiber slows carbohydrate absorption and glucose uptake, reducing post-meal blood sugar spikes, " +
			"and its seeds improve insulin sensitivity. They also lower LDL cholesterol and triglycerides. " +
			"Dosage guidance: soak 1-2 teaspoons of seeds overnight and consume in the morning, or 500-1000 mg extract. " + herbDisclaimer,
	},
	{
		ID:        "gurmar_diabetes",
		Condition: "Diabetes",
		Herb:      "Gurmar (Gymnema)",
		Dosha:     "Kapha",
		Type:      models.EntryTypeHerb,
		Text: "Gurmar (Gymnema sylvestre), meaning 'sugar destroyer' in Sanskrit, is a powerful anti-diabetic herb. " +
			"It blocks sugar absorption in the intestines, reduces sugar cravings by binding taste receptors, " +
			"and stimulates regeneration of pancreatic beta cells. For Madhumeha treatment, Gurmar is often the most specific herb. " +
			"Dosage guidance: 200-400 mg standardized extract twice daily before meals. " + herbDisclaimer,
	},
	{
		ID:        "licorice_acidity",
		Condition: "Acidity",
		Herb:      "Licorice (Yashtimadhu)",
		Dosha:     "Pitta-Vata",
		Type:      models.EntryTypeHerb,
		Text: "Licorice root (Glycyrrhiza glabra), known as Yashtimadhu, is a primary herb for Amlapitta. " +
			"It has demulcent, anti-ulcer, and anti-inflammatory properties, forming a protective mucous coating " +
			"over the stomach lining and reducing irritation from excess acid. It balances Pitta and soothes GERD and heartburn. " +
			"Dosage guidance: 250-500 mg DGL (deglycyrrhizinated licorice) before meals. " + herbDisclaimer,
	},
	{
		ID:        "amalaki_acidity",
		Condition: "Acidity",
		Herb:      "Amalaki (Amla)",
		Dosha:     "Pitta",
		Type:      models.EntryTypeHerb,
		Text: "Amalaki (Emblica officinalis), known as Indian Gooseberry or Amla, is the best Pitta-pacifying fruit in Ayurveda. " +
			"Despite being sour, its post-digestive effect (vipaka) is sweet, making it alkaline-forming in the body. " +
			"It reduces stomach acid, heals gastric ulcers, and is rich in Vitamin C which supports mucosal repair. " +
			"Dosage guidance: 500 mg Amalaki powder or extract, or 20 ml fresh juice twice daily. " + herbDisclaimer,
	},
	{
		ID:        "brahmi_anxiety",
		Condition: "Anxiety",
		Herb:      "Brahmi",
		Dosha:     "Vata-Pitta",
		Type:      models.EntryTypeHerb,
		Text: "Brahmi (Bacopa monnieri) is the foremost nervine tonic in Ayurveda, specifically indicated for Chittodvega. " +
			"It calms the nervous system by enhancing GABA activity, reduces cortisol, improves cognition, " +
			"and is used in Medhya Rasayana formulas. For anxiety it reduces racing thoughts and Vata hyperactivity in the mind. " +
			"Dosage guidance: 300-600 mg Bacopa extract daily, or 1 tsp Brahmi powder in warm milk at night. " + herbDisclaimer,
	},
	{
		ID:        "jatamansi_anxiety",
		Condition: "Anxiety",
		Herb:      "Jatamansi",
		Dosha:     "Vata",
		Type:      models.EntryTypeHerb,
		Text: "Jatamansi (Nardostachys jatamansi) is an Ayurvedic sedative and nervine tonic for anxiety, insomnia, and stress. " +
			"It calms Vata in the nervous system, reduces cortisol, promotes deep sleep, and balances serotonin and GABA. " +
			"It is particularly effective for anxiety with insomnia and palpitations. " +
			"Dosage guidance: 250-500 mg root powder before bedtime with warm milk and honey. " + herbDisclaimer,
	},
	{
		ID:        "kanchanar_thyroid",
		Condition: "Thyroid",
		Herb:      "Kanchanar Guggulu",
		Dosha:     "Kapha-Vata",
		Type:      models.EntryTypeHerb,
		Text: "Kanchanar Guggulu is the primary Ayurvedic formulation for thyroid disorders (Galaganda). " +
			"Kanchanar (Bauhinia variegata) acts on lymphatic and glandular tissue, reducing swelling and nodules. " +
			"Combined with Guggulu resin it enhances thyroid metabolism, reduces Kapha accumulation in the gland, " +
			"and regulates T3/T4 hormones. Dosage guidance: 1-2 tablets twice daily after meals with warm water. " + herbDisclaimer,
	},
}

var DietGuidelines = []models.KnowledgeEntry{
	{
		ID:        "diabetes_diet",
		Condition: "Diabetes",
		Dosha:     "Kapha",
		Type:      models.EntryTypeDiet,
		Text: "Ayurvedic Diet Guidelines for Diabetes (Madhumeha):\n" +
			"FAVOR: bitter, astringent, and pungent tastes. Include barley, old rice, mung dal, green leafy vegetables, " +
			"bitter gourd, fenugreek, turmeric, cinnamon, and amla. Eat warm, light, easily digestible foods with small amounts of ghee.\n" +
			"AVOID: sweet, salty, and sour tastes in excess. Strictly avoid refined sugars, white bread, processed foods, " +
			"fruit juices, sweet fruits, dairy in large quantities, red meat, and alcohol. Avoid daytime sleeping. " +
			"Eat smaller, more frequent meals and never skip breakfast.",
	},
	{
		ID:        "acidity_diet",
		Condition: "Acidity",
		Dosha:     "Pitta",
		Type:      models.EntryTypeDiet,
		Text: "Ayurvedic Diet Guidelines for Acidity (Amlapitta):\n" +
			"FAVOR: sweet, bitter, and astringent tastes. Include cooling foods like cucumber, coconut water, pomegranate, " +
			"melons, ripe bananas, milk, ghee, diluted buttermilk, green vegetables, coriander, fennel, and cardamom. " +
			"Eat on a regular schedule with the largest meal at lunch.\n" +
			"AVOID: spicy, sour, salty, and pungent foods; chili, vinegar, fermented foods, coffee, tea, alcohol, " +
			"carbonated beverages, and fried foods. Avoid eating late at night and do not lie down immediately after eating.",
	},
	{
		ID:        "anxiety_diet",
		Condition: "Anxiety",
		Dosha:     "Vata",
		Type:      models.EntryTypeDiet,
		Text: "Ayurvedic Diet Guidelines for Anxiety:\n" +
			"FAVOR: warm, oily, sweet, sour, and salty tastes. Include warm milk with ashwagandha, ghee, sesame, " +
			"soaked almonds, dals, root vegetables, sweet fruits, and warm spiced foods. Eat at consistent times; " +
			"this alone greatly pacifies Vata. Chamomile, licorice, and ginger teas are beneficial.\n" +
			"AVOID: cold, raw, dry, light, and bitter foods; raw salads, cold smoothies, caffeine, alcohol, " +
			"carbonated drinks, frozen foods, and irregular eating. Eat in a calm, nourishing environment.",
	},
	{
		ID:        "thyroid_diet",
		Condition: "Thyroid",
		Dosha:     "Kapha-Vata",
		Type:      models.EntryTypeDiet,
		Text: "Ayurvedic Diet Guidelines for Thyroid Disorders:\n" +
			"FAVOR: for hypothyroidism (Kapha type) warm, light, spicy, and dry foods with iodine-rich sea vegetables, " +
			"black pepper, ginger, and turmeric. For hyperthyroidism (Pitta-Vata type) cooling, grounding foods such as ghee, " +
			"coconut, sweet fruits, and warm milk. Brazil nuts (selenium) and pumpkin seeds (zinc) support thyroid function.\n" +
			"AVOID: raw goitrogens (broccoli, cabbage, cauliflower, kale) for hypothyroidism; cooking neutralizes them. " +
			"Avoid soy products, processed foods, and caffeine for hyperthyroidism.",
	},
}

var YogaPractices = []models.KnowledgeEntry{
	{
		ID:        "diabetes_yoga",
		Condition: "Diabetes",
		Dosha:     "Kapha",
		Type:      models.EntryTypeYoga,
		Text: "Yoga Practices for Diabetes (Madhumeha):\n" +
			"ASANAS: Dhanurasana (Bow Pose) massages the pancreas and stimulates insulin production. " +
			"Ardha Matsyendrasana (Half Spinal Twist) stimulates pancreas and liver. Paschimottanasana, Sarvangasana, " +
			"and Viparita Karani support endocrine function; Warrior I and II build muscle mass.\n" +
			"PRANAYAMA: Kapalbhati 15-20 min daily (most important for diabetes), Anulom Vilom for balance, Bhastrika for metabolism.\n" +
			"PRACTICE: 45-60 minutes daily in the morning. Walking 30 minutes after meals is highly recommended.",
	},
	{
		ID:        "acidity_yoga",
		Condition: "Acidity",
		Dosha:     "Pitta",
		Type:      models.EntryTypeYoga,
		Text: "Yoga Practices for Acidity:\n" +
			"ASANAS: Vajrasana (Diamond Pose) is uniquely beneficial immediately after meals. Ardha Matsyendrasana and " +
			"Pavanmuktasana massage the digestive organs; Cat-Cow and Balasana calm the nervous system.\n" +
			"PRANAYAMA: Sheetali (Cooling Breath) is most important for Pitta conditions; Shitkari and Nadi Shodhana for balance. " +
			"AVOID Kapalbhati and intense Bhastrika as they heat the body and worsen Pitta.\n" +
			"PRACTICE: 30 minutes daily, in the morning on an empty stomach.",
	},
	{
		ID:        "anxiety_yoga",
		Condition: "Anxiety",
		Dosha:     "Vata",
		Type:      models.EntryTypeYoga,
		Text: "Yoga Practices for Anxiety:\n" +
			"ASANAS: Balasana (Child's Pose) is deeply grounding; Viparita Karani activates the parasympathetic nervous system; " +
			"extended Savasana (15-20 min), Uttanasana, Setu Bandhasana, and 3-5 gentle rounds of Surya Namaskar.\n" +
			"PRANAYAMA: Nadi Shodhana 15 min daily is most effective for Vata anxiety; Bhramari calms the nervous system " +
			"immediately; 4-7-8 breathing for acute episodes.\n" +
			"PRACTICE: daily, gentle, slow-paced. Yin and restorative yoga are ideal.",
	},
	{
		ID:        "thyroid_yoga",
		Condition: "Thyroid",
		Dosha:     "Kapha-Vata",
		Type:      models.EntryTypeYoga,
		Text: "Yoga Practices for Thyroid Disorders:\n" +
			"ASANAS: Sarvangasana (Shoulder Stand) directly stimulates the thyroid and is the most important pose; " +
			"Halasana, Matsyasana, Setu Bandhasana, Bhujangasana, and Ustrasana stretch and stimulate the throat area.\n" +
			"PRANAYAMA: Ujjayi (Ocean Breath) activates the throat area and Vishuddha chakra; Bhramari for stress-related " +
			"dysfunction; Kapalbhati for hypothyroidism.\n" +
			"PRACTICE: 45 minutes daily. Consult a practitioner before inversions if you have hyperthyroidism.",
	},
}

var Precautions = []models.KnowledgeEntry{
	{
		ID:        "diabetes_precautions",
		Condition: "Diabetes",
		Dosha:     "Kapha",
		Type:      models.EntryTypePrecautions,
		Text: "Precautions & When to See a Doctor for Diabetes:\n" +
			"CONSULT A DOCTOR IMMEDIATELY for blood sugar above 300 mg/dL or below 70 mg/dL, signs of diabetic " +
			"ketoacidosis (vomiting, confusion, fruity-smelling breath), foot wounds that do not heal, vision problems, " +
			"or chest pain.\n" +
			"TREATMENT PRECAUTIONS: never stop insulin or diabetes medications without doctor supervision. " +
			"Gurmar and Bitter Melon have hypoglycemic effects, so monitor glucose. Fasting only under medical supervision. " +
			"This plan is wellness guidance only, not a substitute for medical care.",
	},
	{
		ID:        "acidity_precautions",
		Condition: "Acidity",
		Dosha:     "Pitta",
		Type:      models.EntryTypePrecautions,
		Text: "Precautions & When to See a Doctor for Acidity:\n" +
			"CONSULT A DOCTOR IMMEDIATELY for difficulty swallowing, blood in vomit or dark stools, unexplained " +
			"weight loss, severe crushing chest pain, or symptoms persisting despite treatment.\n" +
			"TREATMENT PRECAUTIONS: do not take Triphala with severe active gastritis. Non-DGL licorice can raise " +
			"blood pressure. Consult before combining herbal supplements with antacids, and do not self-medicate " +
			"beyond 2 weeks without reassessment. This plan is wellness guidance only, not a substitute for medical care.",
	},
	{
		ID:        "anxiety_precautions",
		Condition: "Anxiety",
		Dosha:     "Vata",
		Type:      models.EntryTypePrecautions,
		Text: "Precautions & When to See a Doctor for Anxiety:\n" +
			"CONSULT A DOCTOR IMMEDIATELY for panic attacks with chest pain, thoughts of self-harm (seek emergency " +
			"help), severe agoraphobia, anxiety with psychosis, or complete inability to sleep for multiple nights.\n" +
			"TREATMENT PRECAUTIONS: do not stop anti-anxiety medications abruptly; taper under doctor guidance. " +
			"Ashwagandha and Jatamansi may interact with sedatives. Intense pranayama like Kapalbhati can worsen " +
			"anxiety. This plan is wellness guidance only, not a substitute for medical care.",
	},
	{
		ID:        "thyroid_precautions",
		Condition: "Thyroid",
		Dosha:     "Kapha-Vata",
		Type:      models.EntryTypePrecautions,
		Text: "Precautions & When to See a Doctor for Thyroid Disorders:\n" +
			"CONSULT A DOCTOR IMMEDIATELY for thyroid storm (rapid heartbeat, fever, confusion), myxedema coma signs, " +
			"a rapidly growing nodule or goitre, or difficulty breathing or swallowing.\n" +
			"TREATMENT PRECAUTIONS: never stop levothyroxine without endocrinologist approval. Separate Kanchanar " +
			"Guggulu from thyroid medication by 4 hours. Excess iodine can worsen hyperthyroidism, and Sarvangasana " +
			"should be avoided in hyperthyroidism. Monitor TSH, T3, T4 regularly. This plan is wellness guidance only, " +
			"not a substitute for medical care.",
	},
}

var LifestyleAdvice = []models.KnowledgeEntry{
	{
		ID:        "diabetes_lifestyle",
		Condition: "Diabetes",
		Dosha:     "Kapha",
		Type:      models.EntryTypeLifestyle,
		Text: "Lifestyle Advice for Diabetes (Dinacharya):\n" +
			"MORNING: wake by 5-6 AM, drink warm water, walk 30-45 minutes briskly, practice Kapalbhati 15-20 min, " +
			"eat breakfast at a consistent time.\n" +
			"DAY: monitor blood glucose around meals, take a 10-15 min walk after each meal, stay hydrated, manage " +
			"stress, limit sitting time.\n" +
			"EVENING: dinner by 6:30-7 PM, foot care with warm sesame oil, sleep by 10 PM since poor sleep raises blood sugar.\n" +
			"KEY: consistent mealtimes, exercise, and sleep matter as much as diet; meditation reduces cortisol which " +
			"directly raises blood sugar.",
	},
	{
		ID:        "acidity_lifestyle",
		Condition: "Acidity",
		Dosha:     "Pitta",
		Type:      models.EntryTypeLifestyle,
		Text: "Lifestyle Advice for Acidity (Dinacharya):\n" +
			"MORNING: wake by 6-7 AM, drink room-temperature water (not iced), avoid coffee on an empty stomach, " +
			"10-15 min gentle yoga, eat a calm unhurried breakfast.\n" +
			"DAY: largest meal at lunch (12-2 PM) when digestive fire is strongest; sit quietly after meals and in " +
			"Vajrasana after lunch; no intense exercise on a full stomach.\n" +
			"EVENING: light dinner before 7 PM, a 15-20 min walk after dinner, elevate the head of the bed for night " +
			"reflux, no eating 3 hours before bed.\n" +
			"KEY: emotional stress is the greatest Pitta aggravator; meditation, time in nature, and cooling activities " +
			"are powerful tools.",
	},
	{
		ID:        "thyroid_lifestyle",
		Condition: "Thyroid",
		Dosha:     "Kapha-Vata",
		Type:      models.EntryTypeLifestyle,
		Text: "Lifestyle Advice for Thyroid Disorders (Dinacharya):\n" +
			"MORNING: wake at a consistent hour, gentle neck stretches and Ujjayi breathing, warm water with ginger " +
			"for hypothyroid sluggishness.\n" +
			"DAY: regular meals, daily movement appropriate to the type (brisk for hypothyroid, calming for " +
			"hyperthyroid), limit screen-driven stress.\n" +
			"EVENING: early light dinner, oil massage of the feet, sleep by 10 PM to support hormone regulation.\n" +
			"KEY: routine and stress management directly influence thyroid hormone balance; take prescribed thyroid " +
			"medication at the same time daily, separated from food and herbs.",
	},
	{
		ID:        "anxiety_lifestyle",
		Condition: "Anxiety",
		Dosha:     "Vata",
		Type:      models.EntryTypeLifestyle,
		Text: "Lifestyle Advice for Anxiety (Dinacharya, the most important prescription for Vata):\n" +
			"MORNING: wake at the same time every day; consistency is medicine for Vata. Warm oil self-massage " +
			"(Abhyanga) with sesame oil before bathing, gentle yoga, and a warm nourishing breakfast.\n" +
			"DAY: meals at consistent times, limit digital stimulation, take breaks, walk in nature, limit " +
			"decision-making when anxious.\n" +
			"EVENING: dinner by 7 PM, warm milk with Ashwagandha and nutmeg, oil on feet and scalp, journal, sleep " +
			"by 10 PM in a dark quiet room.\n" +
			"KEY: routine is the number one treatment for Vata anxiety; fixed daily timing signals safety to the " +
			"nervous system.",
	},
}

// All maps each knowledge collection to its seed entries.
var All = map[string][]models.KnowledgeEntry{
	models.CollectionConditions:  Conditions,
	models.CollectionHerbs:       Herbs,
	models.CollectionDiet:        DietGuidelines,
	models.CollectionYoga:        YogaPractices,
	models.CollectionPrecautions: Precautions,
	models.CollectionLifestyle:   LifestyleAdvice,
}

// SupportedConditions maps each condition to its primary dosha.
// Used for display in the plan prompt; unknown conditions fall back to
// "Unknown" at the call site.
var SupportedConditions = map[string]string{
	"Diabetes": "Kapha",
	"Acidity":  "Pitta",
	"Thyroid":  "Kapha-Vata",
	"Anxiety":  "Vata",
}
