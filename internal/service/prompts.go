package service

import "fmt"

// chatSystemPrompt primes the nutrition chatbot.
const chatSystemPrompt = `You are a helpful nutrition assistant. Only respond to questions related to:
- BMI
- Obesity levels
- Nutrition
- Healthy foods
- Diet and exercise

IMPORTANT INSTRUCTIONS:
1. Keep responses very short and concise (maximum 2-3 sentences)
2. Focus on direct answers without lengthy explanations
3. If the user asks something outside these topics, simply say: "I can only help with nutrition-related questions."
4. Use simple, clear language
5. No need for greetings or formalities
6. Get straight to the point

Example responses:
User: "What's a healthy breakfast?"
Assistant: "Try oatmeal with fruits and nuts. It's high in fiber and protein, keeping you full longer."

User: "How to lose weight?"
Assistant: "Focus on a balanced diet and regular exercise. Aim for a 500-calorie daily deficit through diet and activity."

User: "What's the weather today?"
Assistant: "I can only help with nutrition-related questions."`

const chatPrimer = "I understand. I will keep my responses short and focused on nutrition."

const tipsPromptTemplate = `
Generate 5 healthy Malaysian recipes and 5 suitable exercises in JSON format for a person with a BMI of %s and Obesity Level is %s.

Requirements for recipes:
- Must be authentic Malaysian dishes or Malaysian-inspired healthy dishes
- Include common ingredients found in Malaysian markets
- Include calorie count and nutritional benefits
- Provide cooking instructions that are easy to follow
- Include a relevant and valid Font Awesome icon class name for the dish
  Example: For Nasi Lemak use "utensils"
  For Mee Goreng use "utensils"
  For Satay use "drumstick-bite"
  For vegetables use "carrot"
  For fruits use "apple-alt"
  For fish dishes use "fish"
  For salads use "leaf"
  For soup use "mug-hot"

Requirements for exercises:
- Must be exercises that can be done in Malaysian climate and environment
- Consider local gym facilities and public spaces available in Malaysia
- Include detailed instructions on how to perform the exercise
- Include duration and intensity recommendations
- Include a relevant and valid Font Awesome icon class name for the exercise
  Example: For Jogging use "running"
        For Yoga use "pray"
        For Swimming use "swimmer"
        For Cycling use "biking"
        For Walking use "walking"
        For Stretching use "hands-helping"
        For Hiking use "hiking"
        For Weightlifting use "dumbbell"
        For Dancing/Zumba use "music"
        For Boxing use "hand-rock"
        For Team Sports use "users"
        For Meditation use "spa"
        For Jump Rope use "child"
        For Treadmill Exercise use "running"
        For Martial Arts use "fist-raised"
        For Generic Workout use "heartbeat"
        For Climbing use "mountain"
        For Gym Session use "weight"

The response should follow this JSON schema:
{
    "recipes": [
        {
            "recipeName": "string",
            "recipeDescription": "string",
            "recipeItems": ["string"],
            "cookingInstructions": ["string"],
            "recipeCalories": "number",
            "recipeBenefits": "string",
            "iconClass": "string (Font Awesome icon class name)",
            "estimatedCookingTime": "string"
        }
    ],
    "exercises": [
        {
            "exerciseName": "string",
            "exerciseDescription": "string",
            "exercisePerform": ["string"],
            "duration": "string",
            "intensity": "string",
            "exerciseBenefits": "string",
            "iconClass": "string (Font Awesome icon class name)",
            "location": "string (where this can be done in Malaysia)"
        }
    ]
}

For recipes, focus on:
- Healthy versions of Malaysian favorites
- Use of local vegetables and proteins
- Balanced nutrition
- Portion control
- Low-oil cooking methods

For exercises, consider:
- Malaysia's tropical climate
- Available facilities (parks, gyms, community centers)
- Cultural considerations
- Indoor and outdoor options
- Different fitness levels

IMPORTANT:
- Use appropriate Font Awesome icon classes
- Icons should be relevant to the recipe/exercise
- Choose icons that best represent the activity or dish
- Just the class name without fas, for example: carrot, not fas fa-carrot
- Must use valid icon name for family "FontAwesome5Free-Regular"

Provide a valid JSON format with appropriate Font Awesome icon classes.
`

const caloriePrompt = "Analyze this food image and provide the following information in a clear format:\n" +
	"1. Identify the main dish name (e.g., 'Chicken Caesar Salad', 'Beef Burger with Fries')\n" +
	"2. List all food items visible in the image\n" +
	"3. For each item, provide an estimated calorie count\n" +
	"4. Calculate and provide the total calories\n" +
	"5. If any items are unclear or cannot be identified, mention them\n" +
	"Be as specific and accurate as possible with the calorie estimates.\n\n" +
	"Format your response as a JSON object with the following structure:\n" +
	"{\n" +
	"  \"dishName\": \"name of the main dish\",\n" +
	"  \"foodItems\": [\n" +
	"    {\n" +
	"      \"name\": \"food name\",\n" +
	"      \"calories\": number,\n" +
	"      \"portion\": \"description of portion\"\n" +
	"    }\n" +
	"  ],\n" +
	"  \"totalCalories\": number,\n" +
	"  \"notes\": [\"any important notes or disclaimers\"]\n" +
	"}\n\n" +
	"IMPORTANT: Return ONLY the JSON object, no other text or formatting."

func tipsPrompt(bmi, obesityRisk string) string {
	return fmt.Sprintf(tipsPromptTemplate, bmi, obesityRisk)
}
